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
	"fmt"

	"dirpx.dev/daqerr/status"
)

// Option is a functional option for constructing a Failure.
// It always takes a *Failure and returns a (possibly new) *Failure.
type Option func(*Failure) *Failure

// WithCode sets the status code on the failure being constructed.
func WithCode(c status.Code) Option {
	return func(f *Failure) *Failure {
		return f.withCode(c)
	}
}

// WithDetail sets the detail on construction.
func WithDetail(detail string) Option {
	return func(f *Failure) *Failure {
		return f.WithDetail(detail)
	}
}

// WithDetailf sets a formatted detail on construction.
func WithDetailf(format string, args ...any) Option {
	return func(f *Failure) *Failure {
		return f.WithDetail(fmt.Sprintf(format, args...))
	}
}

// WithCause attaches a cause on construction. A nil err is ignored.
func WithCause(err error) Option {
	return func(f *Failure) *Failure {
		return f.WithCause(err)
	}
}
