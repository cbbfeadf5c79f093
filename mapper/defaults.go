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

package mapper

import (
	"dirpx.dev/daqerr/status"
	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in projection of native status
// codes onto canonical gRPC codes. Callers may adjust it with options.
var defaultGRPC = map[status.Code]codes.Code{
	status.Success:     codes.OK,
	status.NoMoreItems: codes.OK,
	status.Ignored:     codes.OK,

	// Unclassified.
	status.GeneralError: codes.Unknown,
	status.CallFailed:   codes.Unknown,
	status.CalcFailed:   codes.Internal,

	// Resources.
	status.NoMemory:     codes.ResourceExhausted,
	status.SizeTooSmall: codes.ResourceExhausted,

	// Arguments and values.
	status.InvalidParameter: codes.InvalidArgument,
	status.ArgumentNull:     codes.InvalidArgument,
	status.InvalidValue:     codes.InvalidArgument,
	status.InvalidType:      codes.InvalidArgument,
	status.ParseFailed:      codes.InvalidArgument,
	status.ConversionFailed: codes.InvalidArgument,
	status.OutOfRange:       codes.OutOfRange,

	// Lookup and identity.
	status.NotFound:      codes.NotFound,
	status.ResolveFailed: codes.NotFound,
	status.AlreadyExists: codes.AlreadyExists,

	// Object state.
	status.NotAssigned:     codes.FailedPrecondition,
	status.InvalidState:    codes.FailedPrecondition,
	status.NotEnabled:      codes.FailedPrecondition,
	status.NotFrozen:       codes.FailedPrecondition,
	status.Frozen:          codes.FailedPrecondition,
	status.NotUpdatable:    codes.FailedPrecondition,
	status.NotSerializable: codes.FailedPrecondition,

	// Policy.
	status.AccessDenied: codes.PermissionDenied,

	// Capability.
	status.NotImplemented: codes.Unimplemented,
	status.NotSupported:   codes.Unimplemented,
	status.NoInterface:    codes.Unimplemented,

	// Time.
	status.Timeout: codes.DeadlineExceeded,
}
