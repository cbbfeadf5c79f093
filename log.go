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

import "go.uber.org/zap/zapcore"

var _ zapcore.ObjectMarshaler = (*Failure)(nil)

// MarshalLogObject implements zapcore.ObjectMarshaler, so that
// zap.Object("failure", f) renders the structured fields:
//
//	{"code": "TIMEOUT", "status": "0x80000018", "detail": "...", "cause": {...}}
//
// detail is omitted when absent. cause is nested when it implements
// zapcore.ObjectMarshaler and rendered as text otherwise.
func (f *Failure) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if f == nil {
		return nil
	}
	c := f.Code()
	enc.AddString("code", c.String())
	enc.AddString("status", c.Hex())
	if d, ok := f.Detail(); ok {
		enc.AddString("detail", d)
	}
	if f.cause == nil {
		return nil
	}
	if m, ok := f.cause.(zapcore.ObjectMarshaler); ok {
		return enc.AddObject("cause", m)
	}
	enc.AddString("cause", f.cause.Error())
	return nil
}
