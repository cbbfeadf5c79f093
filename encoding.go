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
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/daqerr/apis"
	"dirpx.dev/daqerr/mapper"
	"dirpx.dev/daqerr/status"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Domain is the ErrorInfo domain that marks envelopes produced by this
// package.
const Domain = "daqerr"

// ErrorInfo metadata keys.
const (
	metaStatus = "status"
	metaDetail = "detail"
)

var (
	// ErrNilFailure is returned when a nil *Failure is asked to serialize
	// itself.
	ErrNilFailure = errors.New("daqerr: nil failure")

	// ErrDecode wraps every failure to parse a serialized envelope.
	ErrDecode = errors.New("daqerr: decode failure")
)

var (
	_ encoding.BinaryMarshaler   = (*Failure)(nil)
	_ encoding.BinaryUnmarshaler = (*Failure)(nil)
	_ json.Marshaler             = (*Failure)(nil)
	_ json.Unmarshaler           = (*Failure)(nil)
)

// Proto captures f as a google.rpc.Status envelope:
//
//   - code: the gRPC projection of the status code (mapper.Default);
//   - message: the detail;
//   - details[0]: ErrorInfo{reason: code name, domain: Domain,
//     metadata: {"status": hex code, "detail": "present" when supplied}};
//   - details[1]: the cause, when there is one. A *Failure cause is nested
//     as its own envelope, any other error as DebugInfo with its text.
//
// A nil f yields nil.
func (f *Failure) Proto() *spb.Status {
	return f.ProtoWith(mapper.Default())
}

// ProtoWith is Proto with the gRPC projection taken from m instead of
// mapper.Default. Nested causes use m as well.
func (f *Failure) ProtoWith(m apis.Mapper) *spb.Status {
	if f == nil {
		return nil
	}
	c := f.Code()
	st := gstatus.New(m.GRPCCode(c), f.detail).Proto()

	info := &errdetails.ErrorInfo{
		Reason:   c.String(),
		Domain:   Domain,
		Metadata: map[string]string{metaStatus: c.Hex()},
	}
	if f.hasDetail {
		info.Metadata[metaDetail] = "present"
	}
	st.Details = append(st.Details, mustAny(info))

	switch cause := f.cause.(type) {
	case nil:
	case *Failure:
		st.Details = append(st.Details, mustAny(cause.ProtoWith(m)))
	default:
		st.Details = append(st.Details, mustAny(&errdetails.DebugInfo{Detail: cause.Error()}))
	}
	return st
}

// Restore rebuilds a Failure from an envelope. It never fails: the code is
// taken from the ErrorInfo of Domain (hex metadata first, then the reason
// name) and defaults to status.GeneralError when neither is usable, which is
// also what envelopes produced by other systems restore to.
//
// Causes restore as *Failure for nested envelopes and as opaque errors
// carrying the original text otherwise.
func Restore(s *spb.Status) *Failure {
	if s == nil {
		return New()
	}
	f := New()
	var (
		info  *errdetails.ErrorInfo
		cause error
	)
	for _, d := range gstatus.FromProto(s).Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if info == nil && v.GetDomain() == Domain {
				info = v
			}
		case *spb.Status:
			if cause == nil {
				cause = Restore(v)
			}
		case *errdetails.DebugInfo:
			if cause == nil {
				cause = errors.New(v.GetDetail())
			}
		}
	}

	f.detail = s.GetMessage()
	f.hasDetail = f.detail != ""
	if info != nil {
		f.code = restoreCode(info)
		_, marked := info.GetMetadata()[metaDetail]
		f.hasDetail = f.hasDetail || marked
	}
	f.cause = cause
	return f
}

// MarshalBinary implements encoding.BinaryMarshaler using the protobuf wire
// format of the envelope.
func (f *Failure) MarshalBinary() ([]byte, error) {
	if f == nil {
		return nil, ErrNilFailure
	}
	return proto.Marshal(f.Proto())
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Failure) UnmarshalBinary(data []byte) error {
	var s spb.Status
	if err := proto.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*f = *Restore(&s)
	return nil
}

// MarshalJSON implements json.Marshaler using the protobuf JSON mapping of
// the envelope.
func (f *Failure) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	return protojson.Marshal(f.Proto())
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves f
// unchanged.
func (f *Failure) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var s spb.Status
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*f = *Restore(&s)
	return nil
}

func restoreCode(info *errdetails.ErrorInfo) status.Code {
	if c, err := status.Parse(info.GetMetadata()[metaStatus]); err == nil {
		return c
	}
	if c, err := status.Parse(info.GetReason()); err == nil {
		return c
	}
	return status.GeneralError
}

// mustAny packs m. Packing only fails for nil or unregistered messages,
// neither of which this package produces.
func mustAny(m proto.Message) *anypb.Any {
	a, err := anypb.New(m)
	if err != nil {
		panic(err)
	}
	return a
}
