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
	"testing"

	"dirpx.dev/daqerr/status"
)

func TestCheck(t *testing.T) {
	for _, rc := range []status.Code{status.Success, status.NoMoreItems, status.Ignored, status.Code(0x42)} {
		if err := Check(rc); err != nil {
			t.Fatalf("Check(%s) = %v, want nil", rc, err)
		}
	}

	err := Check(status.NotFound)
	var f *Failure
	if !errors.As(err, &f) {
		t.Fatalf("Check(NOT_FOUND) = %T, want *Failure", err)
	}
	if f.Code() != status.NotFound || err.Error() != "NOT_FOUND" {
		t.Fatalf("Check(NOT_FOUND) = %s / %q", f.Code(), err.Error())
	}
}

func TestCheckf(t *testing.T) {
	if err := Checkf(status.Success, "never %s", "used"); err != nil {
		t.Fatalf("Checkf(SUCCESS) = %v", err)
	}
	err := Checkf(status.AccessDenied, "property %q is protected", "StrPropProtected")
	if got := err.Error(); got != `ACCESS_DENIED: property "StrPropProtected" is protected` {
		t.Fatalf("Checkf() = %q", got)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want status.Code
	}{
		{"nil", nil, status.Success},
		{"failure", FromCode(status.Timeout), status.Timeout},
		{"wrapped failure", fmt.Errorf("ctx: %w", FromCode(status.NotFound)), status.NotFound},
		{"outermost wins", E(status.CallFailed, "outer", WithCause(FromCode(status.NotFound))), status.CallFailed},
		{"plain error", errors.New("boom"), status.GeneralError},
		{"joined", errors.Join(errors.New("a"), FromCode(status.Frozen)), status.Frozen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", FromCode(status.NotFound))
	if !HasCode(err, status.NotFound) {
		t.Fatal("HasCode(NOT_FOUND) = false")
	}
	if HasCode(err, status.Timeout) {
		t.Fatal("HasCode(TIMEOUT) = true")
	}
	if HasCode(nil, status.Success) {
		t.Fatal("HasCode(nil, SUCCESS) must be false")
	}
	if !HasCode(errors.New("plain"), status.GeneralError) {
		t.Fatal("plain errors count as GENERAL_ERROR")
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want status.Code
	}{
		{"nil fn", nil, status.ArgumentNull},
		{"success", func() error { return nil }, status.Success},
		{"failure", func() error { return FromCode(status.InvalidState) }, status.InvalidState},
		{"plain error", func() error { return errors.New("boom") }, status.GeneralError},
		{"success-coded error", func() error { return FromCode(status.Ignored) }, status.GeneralError},
		{"panic string", func() error { panic("boom") }, status.GeneralError},
		{"panic failure", func() error { panic(FromCode(status.OutOfRange)) }, status.OutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.fn); got != tt.want {
				t.Fatalf("Guard() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGuard_CheckRoundTrip(t *testing.T) {
	rc := Guard(func() error { return E(status.NotSupported, "no such mode") })
	if err := Check(rc); !errors.Is(err, FromCode(status.NotSupported)) {
		t.Fatalf("Check(Guard()) = %v", err)
	}
}
