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

// Package daqerr translates native status codes into typed Go errors.
//
// Native calls report their outcome as a 32-bit status code (see package
// status). At the boundary, Check turns a failing code into a *Failure
// that carries the code, an optional detail and an optional cause:
//
//	if err := daqerr.Check(rc); err != nil {
//	    return err
//	}
//
// Application code can raise failures in the same vocabulary:
//
//	return daqerr.New()                                      // GENERAL_ERROR
//	return daqerr.Msg("disk full")                           // GENERAL_ERROR: disk full
//	return daqerr.E(status.Timeout, "retry exceeded",
//	    daqerr.WithCause(lastErr))                           // TIMEOUT: retry exceeded
//
// A *Failure integrates with the standard tooling:
//
//   - Error() returns "<code>" or "<code>: <detail>";
//   - errors.Unwrap / errors.As reach the cause;
//   - errors.Is matches bare code sentinels (FromCode);
//   - MarshalBinary / MarshalJSON capture it as a google.rpc.Status envelope
//     that Restore, UnmarshalBinary and UnmarshalJSON rebuild;
//   - MarshalLogObject renders it for zap.
//
// The reverse direction, a Go callback invoked by native code, is handled
// by Guard, which converts the returned error (or a panic) back into a
// status code.
package daqerr
