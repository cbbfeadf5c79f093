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
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/daqerr/apis"
	"dirpx.dev/daqerr/status"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every configured gRPC value.
//  4. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate an out-of-range gRPC value or
// a failure code mapped onto codes.OK.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultGRPC {
		b.defaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := validateGRPC(b.fallback); err != nil {
		return nil, fmt.Errorf("mapper: invalid fallback: %w", err)
	}
	if b.fallback == int(codes.OK) {
		return nil, fmt.Errorf("mapper: fallback must not be OK")
	}
	defaults, err := freeze("default", b.defaults)
	if err != nil {
		return nil, err
	}
	overrides, err := freeze("override", b.overrides)
	if err != nil {
		return nil, err
	}

	return &mapper{
		defaults:  defaults,
		overrides: overrides,
		fallback:  codes.Code(b.fallback),
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper apis.Mapper
)

// Default returns the process-wide mapper built from library defaults only.
func Default() apis.Mapper {
	defaultOnce.Do(func() {
		m, err := New()
		if err != nil {
			// Library defaults are static; failing here is a programming error.
			panic(err)
		}
		defaultMapper = m
	})
	return defaultMapper
}

// mapper resolves status codes via per-code overrides, per-code defaults and
// a global fallback. Lookups are O(1) and safe for concurrent use once
// constructed.
type mapper struct {
	defaults  map[status.Code]codes.Code
	overrides map[status.Code]codes.Code

	// fallback is used for failure codes that have no rule at all.
	fallback codes.Code
}

// GRPCCode resolves a gRPC code for c.
//
// Resolution order:
//  1. exact override;
//  2. per-code default;
//  3. codes.OK for any success code;
//  4. the fallback (codes.Unknown unless configured).
func (m *mapper) GRPCCode(c status.Code) codes.Code {
	v, _ := m.resolve(c)
	return v
}

// Explain produces a textual trace of how the gRPC code for c was chosen.
//
// Example output:
//
//	code="NOT_FOUND" status=0x80000006
//	grpc: source=default -> NOTFOUND(5)
//
// source is one of override, default, success or fallback.
func (m *mapper) Explain(c status.Code) string {
	v, src := m.resolve(c)
	return fmt.Sprintf("code=%q status=%s\ngrpc: source=%s -> %s(%d)",
		c.String(), c.Hex(), src, strings.ToUpper(v.String()), int(v))
}

func (m *mapper) resolve(c status.Code) (codes.Code, string) {
	if v, ok := m.overrides[c]; ok {
		return v, "override"
	}
	if v, ok := m.defaults[c]; ok {
		return v, "default"
	}
	if c.Succeeded() {
		return codes.OK, "success"
	}
	return m.fallback, "fallback"
}

// freeze validates a builder map and copies it into typed gRPC codes.
func freeze(tier string, src map[status.Code]int) (map[status.Code]codes.Code, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[status.Code]codes.Code, len(src))
	for c, v := range src {
		if err := validateGRPC(v); err != nil {
			return nil, fmt.Errorf("mapper: invalid %s for %s: %w", tier, c, err)
		}
		if c.Failed() && v == int(codes.OK) {
			return nil, fmt.Errorf("mapper: %s maps failure %s to OK", tier, c)
		}
		dst[c] = codes.Code(v)
	}
	return dst, nil
}

func validateGRPC(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("grpc code %d out of range", v)
	}
	return nil
}
