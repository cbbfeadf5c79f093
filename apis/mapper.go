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

import (
	"dirpx.dev/daqerr/status"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe projection of native status codes
// onto gRPC status codes. It is used wherever a failure has to be described
// in the google.rpc.Status vocabulary, such as the serialized envelope.
type Mapper interface {
	// GRPCCode returns the gRPC code for the given status code. It never
	// returns codes.OK for a failure code.
	GRPCCode(c status.Code) codes.Code

	// Explain returns a human-readable description of which rule matched.
	Explain(c status.Code) string
}
