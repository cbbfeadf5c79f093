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

package apis

import "dirpx.dev/daqerr/status"

// CodedError represents an error that is classified by a native status code.
//
// Generic code (boundary helpers, log adapters) should detect the code via
// errors.As on this interface rather than on a concrete type, so that
// wrappers from other packages can take part.
type CodedError interface {
	error

	// ErrorCode returns the status code. Implementations must always return
	// a code; an error without a more specific classification reports
	// status.GeneralError.
	ErrorCode() status.Code
}

// DetailedError represents an error that carries an optional human-readable
// detail next to its code.
type DetailedError interface {
	error

	// ErrorDetail returns the detail and whether one was supplied. A
	// supplied detail may still be empty or blank.
	ErrorDetail() (string, bool)
}

// CausedError represents an error that exposes its underlying cause.
//
// It mirrors errors.Unwrap, but keeps the contract explicit for callers that
// only care about the immediate cause. Implementations SHOULD return the
// direct cause, or nil when there is none.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}
