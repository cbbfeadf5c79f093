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

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"dirpx.dev/daqerr"
	"dirpx.dev/daqerr/status"
	"github.com/spf13/cobra"
)

// maxInput bounds how much decode reads.
const maxInput = 1 << 20

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a serialized failure and print it with its cause chain",
		Long: `Reads a serialized failure from file, or stdin when no file is given.
JSON envelopes are recognised by a leading '{'; anything else is treated as
the base64-encoded binary envelope.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				fh, err := os.Open(args[0])
				if err != nil {
					return daqerr.E(status.NotFound, "open input", daqerr.WithCause(err))
				}
				defer fh.Close()
				in = fh
			}
			raw, err := io.ReadAll(io.LimitReader(in, maxInput))
			if err != nil {
				return daqerr.Wrap("read input", err)
			}

			f, err := decodeFailure(bytes.TrimSpace(raw))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.format() == formatJSON {
				return a.writeEnvelope(out, f)
			}
			_, err = fmt.Fprintf(out, "%+v\n", f)
			return err
		},
	}
}

func decodeFailure(raw []byte) (*daqerr.Failure, error) {
	if len(raw) == 0 {
		return nil, errUsage.WithDetail("empty input")
	}
	var f daqerr.Failure
	if raw[0] == '{' {
		if err := f.UnmarshalJSON(raw); err != nil {
			return nil, daqerr.E(status.ParseFailed, "decode json envelope", daqerr.WithCause(err))
		}
		return &f, nil
	}
	bin, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, daqerr.E(status.ParseFailed, "decode base64 envelope", daqerr.WithCause(err))
	}
	if err := f.UnmarshalBinary(bin); err != nil {
		return nil, daqerr.E(status.ParseFailed, "decode binary envelope", daqerr.WithCause(err))
	}
	return &f, nil
}
