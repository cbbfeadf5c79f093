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

// Package mapper projects native status codes (dirpx.dev/daqerr/status) onto
// canonical gRPC codes.
//
// The projection is what the serialized failure envelope (a google.rpc.Status)
// carries in its code field, so that generic tools reading the envelope get a
// meaningful class even when they know nothing about native codes.
//
// # Resolution model
//
// A Mapper resolves codes in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. codes.OK for every success code;
//  4. global fallback (codes.Unknown).
//
// A failure code never resolves to codes.OK; New rejects options that would
// make it.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(status.Timeout, int(codes.Unavailable)),
//	)
//
// Mapper.Explain returns a human-readable trace of which tier matched. It is
// meant for inspection, not for machine parsing.
//
// All inputs are copied during New; a Mapper is safe to share between
// goroutines.
package mapper
