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

package daqerr

import (
	"errors"
	"fmt"

	"dirpx.dev/daqerr/apis"
	"dirpx.dev/daqerr/status"
)

// Check translates the result of a native call. It returns nil when rc does
// not carry the failure bit, and a *Failure with code rc otherwise.
//
//	if err := daqerr.Check(rc); err != nil {
//	    return err
//	}
func Check(rc status.Code) error {
	if rc.Succeeded() {
		return nil
	}
	return FromCode(rc)
}

// Checkf is Check with a formatted detail attached to the failure.
// The format is only evaluated when rc is a failure.
func Checkf(rc status.Code, format string, args ...any) error {
	if rc.Succeeded() {
		return nil
	}
	return E(rc, fmt.Sprintf(format, args...))
}

// CodeOf returns the status code classifying err:
//
//   - status.Success for a nil error;
//   - the code of the first apis.CodedError in the chain;
//   - status.GeneralError for any other error.
func CodeOf(err error) status.Code {
	if err == nil {
		return status.Success
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return ce.ErrorCode()
	}
	return status.GeneralError
}

// HasCode reports whether err is non-nil and CodeOf(err) == c. Errors that
// carry no code count as status.GeneralError.
func HasCode(err error, c status.Code) bool {
	return err != nil && CodeOf(err) == c
}

// Guard runs a Go callback on behalf of native code and turns its outcome
// into the status code the native side expects.
//
// A nil error yields status.Success. A non-nil error yields its code, or
// status.GeneralError when that code does not denote a failure. A panic is
// recovered and reported the same way: with the code of the panic value
// when it is an error, status.GeneralError otherwise. A nil fn yields
// status.ArgumentNull.
func Guard(fn func() error) (rc status.Code) {
	if fn == nil {
		return status.ArgumentNull
	}
	defer func() {
		if r := recover(); r != nil {
			err, _ := r.(error)
			if err == nil {
				err = fmt.Errorf("panic: %v", r)
			}
			rc = failureCode(err)
		}
	}()
	if err := fn(); err != nil {
		return failureCode(err)
	}
	return status.Success
}

// failureCode is CodeOf for a non-nil err, forced into the failure range.
func failureCode(err error) status.Code {
	if c := CodeOf(err); c.Failed() {
		return c
	}
	return status.GeneralError
}
