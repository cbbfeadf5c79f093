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
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/daqerr/status"
	"github.com/spf13/cobra"
)

type listEntry struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Failed bool   `json:"failed"`
	GRPC   string `json:"grpc"`
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known status code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			members := status.Members()
			entries := make([]listEntry, 0, len(members))
			for _, c := range members {
				entries = append(entries, listEntry{
					Status: c.Hex(),
					Name:   c.String(),
					Failed: c.Failed(),
					GRPC:   a.mapper.GRPCCode(c).String(),
				})
			}

			out := cmd.OutOrStdout()
			if a.format() == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			var b strings.Builder
			for _, e := range entries {
				fmt.Fprintf(&b, "%s  %-18s %s\n", e.Status, e.Name, e.GRPC)
			}
			_, err := fmt.Fprint(out, b.String())
			return err
		},
	}
}
