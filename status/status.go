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
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Code is a native status code as returned by every call across the native
// boundary.
//
// Values with FailureBit set denote failures, values without it denote
// success (possibly with extra information, such as NoMoreItems). The type
// is open: codes that are not in the member table still round
// trip and render as hexadecimal.
type Code uint32

// FailureBit is the bit every failure code carries.
const FailureBit Code = 0x80000000

// Prefixes accepted (and stripped) by Parse, longest first. They match the
// spelling of the constants in the native headers.
var nativePrefixes = []string{"OPENDAQ_ERR_", "OPENDAQ_"}

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a status
	// code.
	ErrCodeInvalid = errors.New("status: invalid code")
)

var (
	_ encoding.TextMarshaler   = Code(0)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ fmt.Stringer             = Code(0)
)

// byKey indexes members by their name with underscores removed, so that
// "GENERAL_ERROR" and the header spelling "GENERALERROR" resolve alike.
var byKey = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[compact(n)] = c
	}
	return m
}()

// Failed reports whether c denotes a failure.
func (c Code) Failed() bool { return c&FailureBit != 0 }

// Succeeded reports whether c denotes success.
func (c Code) Succeeded() bool { return !c.Failed() }

// Known reports whether c is a member of the table shipped with this package.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}

// String returns the member name, or the hexadecimal form (0x%08X) for codes
// outside the table.
func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return c.Hex()
}

// Hex returns the code as eight upper-case hex digits with a 0x prefix.
func (c Code) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler. It never fails: unknown
// codes are written in hexadecimal, which Parse accepts back.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Members returns every known code in ascending numeric order.
func Members() []Code {
	out := make([]Code, 0, len(names))
	for c := range names {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Normalize brings a user-provided name closer to the canonical form:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-' and ' ' with '_';
//   - strips a native header prefix (OPENDAQ_ERR_, OPENDAQ_).
//
// It does not guarantee that the result names a member.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	for _, p := range nativePrefixes {
		if rest, ok := strings.CutPrefix(s, p); ok && rest != "" {
			return rest
		}
	}
	return s
}

// Parse resolves a member name or a numeral into a Code.
//
// Names are matched after Normalize, ignoring underscores. Numerals may be
// decimal or hexadecimal (0x prefix) and may denote any 32-bit value, known
// or not.
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrCodeInvalid
	}
	if n[0] >= '0' && n[0] <= '9' {
		v, err := strconv.ParseUint(n, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
		}
		return Code(v), nil
	}
	if c, ok := byKey[compact(n)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func compact(s string) string {
	return strings.ReplaceAll(s, "_", "")
}
