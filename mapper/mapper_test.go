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
	"strings"
	"sync"
	"testing"

	"dirpx.dev/daqerr/status"
	"google.golang.org/grpc/codes"
)

func TestDefaults_Sanity(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c status.Code, want codes.Code) {
		t.Helper()
		if got := m.GRPCCode(c); got != want {
			t.Fatalf("GRPCCode(%s) = %v, want %v", c, got, want)
		}
	}
	check(status.Success, codes.OK)
	check(status.GeneralError, codes.Unknown)
	check(status.NotFound, codes.NotFound)
	check(status.Timeout, codes.DeadlineExceeded)
	check(status.AccessDenied, codes.PermissionDenied)
	check(status.NotImplemented, codes.Unimplemented)
}

func TestDefaults_EveryFailureIsNotOK(t *testing.T) {
	m := Default()
	for _, c := range status.Members() {
		got := m.GRPCCode(c)
		if c.Failed() && got == codes.OK {
			t.Fatalf("failure %s resolved to OK", c)
		}
		if c.Succeeded() && got != codes.OK {
			t.Fatalf("success %s resolved to %v", c, got)
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithGRPCDefault(status.Timeout, int(codes.Unavailable)),
		WithGRPCOverride(status.Timeout, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(status.Timeout); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
}

func TestGRPCOverrides_Bulk(t *testing.T) {
	src := map[status.Code]int{status.NotFound: int(codes.Internal)}
	m, err := New(WithGRPCOverrides(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src[status.NotFound] = int(codes.Aborted)
	if got := m.GRPCCode(status.NotFound); got != codes.Internal {
		t.Fatalf("mapper must not observe caller map; got %v", got)
	}
}

func TestUnknownCodes(t *testing.T) {
	m, err := New(WithFallback(int(codes.Internal)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(status.Code(0x8000ABCD)); got != codes.Internal {
		t.Fatalf("unknown failure: got %v, want fallback %v", got, codes.Internal)
	}
	if got := m.GRPCCode(status.Code(0x00000ABC)); got != codes.OK {
		t.Fatalf("unknown success: got %v, want OK", got)
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"override out of range", WithGRPCOverride(status.NotFound, 99)},
		{"default negative", WithGRPCDefault(status.NotFound, -1)},
		{"failure to OK", WithGRPCOverride(status.GeneralError, int(codes.OK))},
		{"fallback OK", WithFallback(int(codes.OK))},
		{"fallback out of range", WithFallback(17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatal("New() expected error")
			} else if !strings.HasPrefix(err.Error(), "mapper: ") {
				t.Fatalf("error %q lacks package prefix", err)
			}
		})
	}
}

func TestNew_AllowsSuccessToOK(t *testing.T) {
	if _, err := New(WithGRPCOverride(status.Ignored, int(codes.OK))); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestDefault_SharedAndConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Default().GRPCCode(status.NotFound) != codes.NotFound {
				t.Error("Default() resolved NotFound incorrectly")
			}
		}()
	}
	wg.Wait()
	if Default() != Default() {
		t.Fatal("Default() must return the same instance")
	}
}
