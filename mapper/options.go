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
	"dirpx.dev/daqerr/status"
	"google.golang.org/grpc/codes"
)

// builder collects user adjustments before New freezes them. Values are kept
// as plain ints so that out-of-range input can be reported instead of being
// silently truncated.
type builder struct {
	// defaults holds per-code defaults, seeded with the library table.
	defaults map[status.Code]int
	// overrides holds exact per-code overrides (higher than defaults).
	overrides map[status.Code]int
	// fallback applies to failure codes that have no rule.
	fallback int
}

// Option configures the Mapper at build time.
type Option func(*builder)

func newBuilder() *builder {
	return &builder{
		defaults:  make(map[status.Code]int, len(defaultGRPC)),
		overrides: make(map[status.Code]int),
		fallback:  int(codes.Unknown),
	}
}

// WithGRPCDefault sets or replaces the library default for c.
func WithGRPCDefault(c status.Code, grpc int) Option {
	return func(b *builder) { b.defaults[c] = grpc }
}

// WithGRPCOverride registers an exact override for c. Overrides take
// precedence over defaults.
func WithGRPCOverride(c status.Code, grpc int) Option {
	return func(b *builder) { b.overrides[c] = grpc }
}

// WithGRPCOverrides registers several overrides at once, e.g. from a config
// file. The map is copied.
func WithGRPCOverrides(m map[status.Code]int) Option {
	return func(b *builder) {
		for c, v := range m {
			b.overrides[c] = v
		}
	}
}

// WithFallback replaces the code used for failures without any rule.
func WithFallback(grpc int) Option {
	return func(b *builder) { b.fallback = grpc }
}
