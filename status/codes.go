/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

// Success codes
//
// The failure bit is clear. Native calls may return any of these and the
// boundary treats them all as "no error".
const (
	// Success is the plain "operation completed" result.
	Success Code = 0x00000000

	// NoMoreItems is returned by iterators once the sequence is exhausted.
	NoMoreItems Code = 0x00000001

	// Ignored indicates the call was accepted but had no effect, for example
	// setting a property to the value it already holds.
	Ignored Code = 0x00000002
)

// Failure codes
//
// Every member below has the failure bit set. The numeric values follow the
// native header; only the names are owned by this package.
const (
	// NoMemory indicates that the native side could not allocate.
	NoMemory Code = 0x80000000

	// InvalidParameter indicates that an argument violated the contract of
	// the call (wrong shape, wrong combination).
	InvalidParameter Code = 0x80000001

	// SizeTooSmall indicates that a caller-provided buffer is too small.
	SizeTooSmall Code = 0x80000003

	// ConversionFailed indicates that a value could not be converted to the
	// requested type.
	ConversionFailed Code = 0x80000004

	// OutOfRange indicates an index or value outside the accepted range.
	OutOfRange Code = 0x80000005

	// NotFound indicates that the requested object, key or component does
	// not exist.
	NotFound Code = 0x80000006

	// AlreadyExists indicates that an object with the same identity is
	// already registered.
	AlreadyExists Code = 0x80000008

	// NotAssigned indicates that a required reference was never set.
	NotAssigned Code = 0x80000009

	// CallFailed indicates that a nested call or callback failed.
	CallFailed Code = 0x8000000A

	// ParseFailed indicates that textual input could not be parsed.
	ParseFailed Code = 0x8000000B

	// InvalidValue indicates a value that is well-typed but not acceptable.
	InvalidValue Code = 0x8000000C

	// ResolveFailed indicates that a reference or address could not be
	// resolved.
	ResolveFailed Code = 0x80000010

	// InvalidType indicates a value of an unexpected type.
	InvalidType Code = 0x80000011

	// AccessDenied indicates that the caller may not perform the operation,
	// for example writing a protected property.
	AccessDenied Code = 0x80000012

	// NotEnabled indicates that the targeted feature is switched off.
	NotEnabled Code = 0x80000013

	// GeneralError is the unclassified failure. Failures that are raised
	// without a native status code at hand default to it.
	GeneralError Code = 0x80000014

	// CalcFailed indicates that a computation could not be completed.
	CalcFailed Code = 0x80000015

	// NotFrozen indicates an operation that requires a frozen object.
	NotFrozen Code = 0x80000016

	// NotSerializable indicates that an object cannot be serialized.
	NotSerializable Code = 0x80000017

	// Timeout indicates that the operation exceeded its time budget.
	Timeout Code = 0x80000018

	// Frozen indicates an attempt to modify a frozen object.
	Frozen Code = 0x80000019

	// NotUpdatable indicates that an object rejects updates.
	NotUpdatable Code = 0x8000001A

	// ArgumentNull indicates that a required argument was null.
	ArgumentNull Code = 0x80000026

	// InvalidState indicates that the target is in a state that does not
	// allow the operation.
	InvalidState Code = 0x80000027

	// NotImplemented indicates that the operation has no implementation.
	NotImplemented Code = 0x80004001

	// NoInterface indicates that the object does not implement the
	// requested interface.
	NoInterface Code = 0x80004002

	// NotSupported indicates that the operation is known but not supported
	// by this object or build.
	NotSupported Code = 0x80004003
)

// names maps every known member to its canonical name.
var names = map[Code]string{
	Success:     "SUCCESS",
	NoMoreItems: "NO_MORE_ITEMS",
	Ignored:     "IGNORED",

	NoMemory:         "NO_MEMORY",
	InvalidParameter: "INVALID_PARAMETER",
	SizeTooSmall:     "SIZE_TOO_SMALL",
	ConversionFailed: "CONVERSION_FAILED",
	OutOfRange:       "OUT_OF_RANGE",
	NotFound:         "NOT_FOUND",
	AlreadyExists:    "ALREADY_EXISTS",
	NotAssigned:      "NOT_ASSIGNED",
	CallFailed:       "CALL_FAILED",
	ParseFailed:      "PARSE_FAILED",
	InvalidValue:     "INVALID_VALUE",
	ResolveFailed:    "RESOLVE_FAILED",
	InvalidType:      "INVALID_TYPE",
	AccessDenied:     "ACCESS_DENIED",
	NotEnabled:       "NOT_ENABLED",
	GeneralError:     "GENERAL_ERROR",
	CalcFailed:       "CALC_FAILED",
	NotFrozen:        "NOT_FROZEN",
	NotSerializable:  "NOT_SERIALIZABLE",
	Timeout:          "TIMEOUT",
	Frozen:           "FROZEN",
	NotUpdatable:     "NOT_UPDATABLE",
	ArgumentNull:     "ARGUMENT_NULL",
	InvalidState:     "INVALID_STATE",
	NotImplemented:   "NOT_IMPLEMENTED",
	NoInterface:      "NO_INTERFACE",
	NotSupported:     "NOT_SUPPORTED",
}
