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
	"fmt"
	"io"
	"strings"

	"dirpx.dev/daqerr"
	"dirpx.dev/daqerr/status"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newExplainCommand(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "explain <code> [detail...]",
		Short: "Print the display text of a failure built from a code and detail",
		Long: `Builds the failure a native call returning <code> would produce and prints
its display text. <code> is a member name (NOT_FOUND, OPENDAQ_ERR_NOTFOUND)
or a numeral (0x80000006). Remaining arguments form the detail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := status.Parse(args[0])
			if err != nil {
				return errUsage.WithDetail(err.Error())
			}
			f := daqerr.FromCode(c)
			if len(args) > 1 {
				f = f.WithDetail(strings.Join(args[1:], " "))
			}

			out := cmd.OutOrStdout()
			if a.format() == formatJSON {
				return a.writeEnvelope(out, f)
			}
			if _, err := fmt.Fprintln(out, f.Error()); err != nil {
				return err
			}
			if verbose {
				_, err := fmt.Fprintln(out, a.mapper.Explain(c))
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print how the gRPC projection was chosen")
	return cmd
}

// writeEnvelope prints the indented JSON envelope of f, projected with the
// configured mapper.
func (a *app) writeEnvelope(w io.Writer, f *daqerr.Failure) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(f.ProtoWith(a.mapper))
	if err != nil {
		return daqerr.Wrap("encode envelope", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
