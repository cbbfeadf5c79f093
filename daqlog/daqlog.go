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

// Package daqlog reports errors classified by native status codes through
// zap.
//
// The helpers only rely on the standard error conventions (errors.Unwrap,
// errors.As on apis.CodedError), so any error type takes part, not just
// *daqerr.Failure.
package daqlog

import (
	"errors"

	"dirpx.dev/daqerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxChain bounds Chain against cyclic Unwrap implementations.
const maxChain = 64

// Chain returns the text of err and of every error reachable through
// errors.Unwrap, outermost first. It returns nil for a nil err.
func Chain(err error) []string {
	var out []string
	for err != nil && len(out) < maxChain {
		out = append(out, err.Error())
		err = errors.Unwrap(err)
	}
	return out
}

// Fields builds the structured fields that describe err:
//
//   - error: the display text;
//   - error_code, error_status: the classifying code (name and hex);
//   - cause_chain: the texts of the causes, when there are any;
//   - failure: the structured object, when a link implements
//     zapcore.ObjectMarshaler.
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	c := daqerr.CodeOf(err)
	fields := []zap.Field{
		zap.String("error", err.Error()),
		zap.String("error_code", c.String()),
		zap.String("error_status", c.Hex()),
	}
	if chain := Chain(err); len(chain) > 1 {
		fields = append(fields, zap.Strings("cause_chain", chain[1:]))
	}
	var om zapcore.ObjectMarshaler
	if errors.As(err, &om) {
		fields = append(fields, zap.Object("failure", om))
	}
	return fields
}

// Report logs err under action. Failure codes are logged at Error level;
// errors whose code is not a failure at Warn.
// A nil logger or a nil err is a no-op.
func Report(l *zap.Logger, action string, err error, fields ...zap.Field) {
	if l == nil || err == nil {
		return
	}
	if action == "" {
		action = "native_call"
	}
	base := append([]zap.Field{zap.String("action", action)}, Fields(err)...)
	base = append(base, fields...)
	if daqerr.CodeOf(err).Failed() {
		l.Error(action, base...)
		return
	}
	l.Warn(action, base...)
}
