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

import (
	"errors"
	"testing"
)

func TestCode_Failed(t *testing.T) {
	tests := []struct {
		name string
		in   Code
		want bool
	}{
		{"success", Success, false},
		{"no more items", NoMoreItems, false},
		{"ignored", Ignored, false},
		{"general error", GeneralError, true},
		{"not implemented", NotImplemented, true},
		{"unknown failure", Code(0x8000ABCD), true},
		{"unknown success", Code(0x00001234), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Failed(); got != tt.want {
				t.Fatalf("%s.Failed() = %v, want %v", tt.in, got, tt.want)
			}
			if got := tt.in.Succeeded(); got == tt.want {
				t.Fatalf("%s.Succeeded() = %v, want %v", tt.in, got, !tt.want)
			}
		})
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		in   Code
		want string
	}{
		{GeneralError, "GENERAL_ERROR"},
		{NotFound, "NOT_FOUND"},
		{Timeout, "TIMEOUT"},
		{Success, "SUCCESS"},
		{Code(0x8000ABCD), "0x8000ABCD"},
		{Code(7), "0x00000007"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMembers_SortedAndNamed(t *testing.T) {
	ms := Members()
	if len(ms) != len(names) {
		t.Fatalf("Members() len = %d, want %d", len(ms), len(names))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1] >= ms[i] {
			t.Fatalf("Members() not sorted at %d: %s >= %s", i, ms[i-1].Hex(), ms[i].Hex())
		}
	}
	for _, c := range ms {
		if !c.Known() {
			t.Fatalf("%s reported unknown", c.Hex())
		}
	}
	if Code(0x8000ABCD).Known() {
		t.Fatal("unlisted code reported known")
	}
}

func TestMembers_FailureBitMatchesGroup(t *testing.T) {
	success := map[Code]bool{Success: true, NoMoreItems: true, Ignored: true}
	for _, c := range Members() {
		if c.Failed() == success[c] {
			t.Fatalf("%s: Failed() = %v", c, c.Failed())
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim and upper", "  not_found ", "NOT_FOUND"},
		{"dash", "general-error", "GENERAL_ERROR"},
		{"space", "access denied", "ACCESS_DENIED"},
		{"err prefix", "OPENDAQ_ERR_GENERALERROR", "GENERALERROR"},
		{"plain prefix", "opendaq_success", "SUCCESS"},
		{"bare prefix kept", "OPENDAQ_", "OPENDAQ_"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"canonical", "GENERAL_ERROR", GeneralError},
		{"lower", "not_found", NotFound},
		{"header spelling", "OPENDAQ_ERR_GENERALERROR", GeneralError},
		{"header spelling with underscores", "OPENDAQ_ERR_ARGUMENT_NULL", ArgumentNull},
		{"compact", "NOTIMPLEMENTED", NotImplemented},
		{"success header", "OPENDAQ_SUCCESS", Success},
		{"hex", "0x80000006", NotFound},
		{"hex upper", "0X80000018", Timeout},
		{"decimal", "0", Success},
		{"unknown numeric", "0x8000ABCD", Code(0x8000ABCD)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "NOPE", "0x1FFFFFFFF", "12abc", "OPENDAQ_ERR_"} {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", in, got)
			}
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) error %v is not ErrCodeInvalid", in, err)
			}
		})
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	for _, c := range append(Members(), Code(0x8000ABCD)) {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("Parse(%q) = %s, want %s", c.String(), got.Hex(), c.Hex())
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}

func TestCode_TextRoundTrip(t *testing.T) {
	text, err := NotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "NOT_FOUND" {
		t.Fatalf("MarshalText() = %q, want %q", text, "NOT_FOUND")
	}

	var c Code
	if err := c.UnmarshalText([]byte("  opendaq_err_timeout ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != Timeout {
		t.Fatalf("UnmarshalText() = %s, want %s", c, Timeout)
	}

	bad := Code(5)
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatal("UnmarshalText() expected error for invalid input")
	}
	if bad != Code(5) {
		t.Fatal("UnmarshalText() modified receiver on error")
	}
}
