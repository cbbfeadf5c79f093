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
	"io"
	"strings"

	"dirpx.dev/daqerr/apis"
	"dirpx.dev/daqerr/status"
)

// Failure is the typed representation of a native failure.
//
// It carries:
//   - Code: the native status code (always present, GeneralError by default);
//   - Detail: optional free-text description;
//   - Cause: optional wrapped underlying error.
//
// A Failure is immutable after construction. The copy helpers (WithX)
// return new values, so instances can be shared between goroutines freely.
type Failure struct {
	code  status.Code
	coded bool

	detail    string
	hasDetail bool

	cause error
}

var (
	_ apis.CodedError    = (*Failure)(nil)
	_ apis.DetailedError = (*Failure)(nil)
	_ apis.CausedError   = (*Failure)(nil)
	_ fmt.Formatter      = (*Failure)(nil)
)

// New returns a Failure with code GeneralError, no detail and no cause,
// then applies opts in order.
func New(opts ...Option) *Failure {
	f := &Failure{code: status.GeneralError, coded: true}
	for _, opt := range opts {
		if opt != nil {
			f = opt(f)
		}
	}
	return f
}

// Msg returns a GeneralError failure with the given detail.
func Msg(detail string) *Failure {
	return New(WithDetail(detail))
}

// Wrap returns a GeneralError failure with the given detail and cause.
// A nil cause is treated as absent.
func Wrap(detail string, cause error) *Failure {
	return New(WithDetail(detail), WithCause(cause))
}

// FromCode returns a failure carrying c and nothing else. This is the shape
// produced when a native call reports a bare status code.
func FromCode(c status.Code) *Failure {
	return New(WithCode(c))
}

// E is the primary constructor used at the native boundary.
//
// Usage:
//
//	return daqerr.E(status.Timeout, "retry exceeded",
//	    daqerr.WithCause(lastErr),
//	)
//
// It always returns a new Failure and applies all provided options in order.
func E(c status.Code, detail string, opts ...Option) *Failure {
	return New(append([]Option{WithCode(c), WithDetail(detail)}, opts...)...)
}

// Error implements the built-in error interface and returns the display
// text:
//
//	<code>
//
// when the detail is absent, empty or whitespace-only, and otherwise
//
//	<code>: <detail>
//
// with the detail verbatim. The text is computed from the fields on every
// call and only reads them directly.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	name := f.Code().String()
	if strings.TrimSpace(f.detail) == "" {
		return name
	}
	return name + ": " + f.detail
}

// Code returns the status code. It is never unset: a zero Failure reports
// status.GeneralError.
func (f *Failure) Code() status.Code {
	if f == nil || !f.coded {
		return status.GeneralError
	}
	return f.code
}

// ErrorCode implements apis.CodedError.
func (f *Failure) ErrorCode() status.Code { return f.Code() }

// Detail returns the detail and whether one was supplied.
func (f *Failure) Detail() (string, bool) {
	if f == nil {
		return "", false
	}
	return f.detail, f.hasDetail
}

// ErrorDetail implements apis.DetailedError.
func (f *Failure) ErrorDetail() (string, bool) { return f.Detail() }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.cause
}

// Cause implements apis.CausedError.
func (f *Failure) Cause() error { return f.Unwrap() }

// Is reports whether target is a bare code sentinel (a *Failure without
// detail or cause) with the same code as f:
//
//	errors.Is(err, daqerr.FromCode(status.NotFound))
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || f == nil || t == nil {
		return false
	}
	if t.hasDetail || t.cause != nil {
		return false
	}
	return f.Code() == t.Code()
}

// Format implements fmt.Formatter.
//
//	%s, %v  display text (Error())
//	%q      quoted display text
//	%+v     display text followed by one "caused by:" line per cause,
//	        each cause formatted with %+v
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(s, f.Error())
		if s.Flag('+') && f != nil && f.cause != nil {
			_, _ = io.WriteString(s, "\ncaused by: ")
			_, _ = fmt.Fprintf(s, "%+v", f.cause)
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	default:
		_, _ = io.WriteString(s, f.Error())
	}
}

// WithDetail returns a copy of f with the detail replaced.
// The original failure is not modified.
func (f *Failure) WithDetail(detail string) *Failure {
	cp := f.clone()
	cp.detail = detail
	cp.hasDetail = true
	return cp
}

// WithCause returns a copy of f with the given cause attached.
// If err is nil, or a nil *Failure, f is returned unchanged.
func (f *Failure) WithCause(err error) *Failure {
	if err == nil {
		return f
	}
	if ff, ok := err.(*Failure); ok && ff == nil {
		return f
	}
	cp := f.clone()
	cp.cause = err
	return cp
}

func (f *Failure) withCode(c status.Code) *Failure {
	cp := f.clone()
	cp.code = c
	cp.coded = true
	return cp
}

// clone returns a shallow copy. A nil receiver yields a fresh default
// failure so that copy helpers never panic.
func (f *Failure) clone() *Failure {
	if f == nil {
		return New()
	}
	cp := *f
	if !cp.coded {
		cp.code, cp.coded = status.GeneralError, true
	}
	return &cp
}
