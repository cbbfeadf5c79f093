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
	"strconv"
	"strings"

	"dirpx.dev/daqerr"
	"dirpx.dev/daqerr/apis"
	"dirpx.dev/daqerr/mapper"
	"dirpx.dev/daqerr/status"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// errUsage classifies command-line mistakes.
var errUsage = daqerr.FromCode(status.InvalidParameter)

// app is the state shared by all subcommands once configuration is loaded.
type app struct {
	v      *viper.Viper
	log    *zap.Logger
	mapper apis.Mapper
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{v: viper.New(), log: logger}

	cmd := &cobra.Command{
		Use:           "daqerr",
		Short:         "Inspect native status codes and serialized failures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a config file (yaml, json or toml)")
	flags.String("format", formatText, "output format: text or json")
	for _, name := range []string{"config", "format"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	a.v.SetEnvPrefix("DAQERR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(
		newListCommand(a),
		newExplainCommand(a),
		newDecodeCommand(a),
	)
	return cmd
}

// load reads the optional config file and builds the mapper from the
// grpc_overrides section.
func (a *app) load() error {
	if path := strings.TrimSpace(a.v.GetString("config")); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %q: %w", path, err)
		}
		a.log.Debug("config loaded", zap.String("path", path))
	}

	switch f := a.format(); f {
	case formatText, formatJSON:
	default:
		return errUsage.WithDetail(fmt.Sprintf("unknown format %q", f))
	}

	overrides, err := parseOverrides(a.v.GetStringMapString("grpc_overrides"))
	if err != nil {
		return err
	}
	m, err := mapper.New(mapper.WithGRPCOverrides(overrides))
	if err != nil {
		return daqerr.Wrap("build mapper", err)
	}
	a.mapper = m
	return nil
}

func (a *app) format() string {
	return strings.ToLower(strings.TrimSpace(a.v.GetString("format")))
}

// parseOverrides converts {status name: grpc name or number} into mapper
// input, e.g. {"timeout": "unavailable"}.
func parseOverrides(raw map[string]string) (map[status.Code]int, error) {
	out := make(map[status.Code]int, len(raw))
	for k, v := range raw {
		c, err := status.Parse(k)
		if err != nil {
			return nil, errUsage.WithDetail(fmt.Sprintf("grpc_overrides: %v", err))
		}
		g, err := parseGRPCCode(v)
		if err != nil {
			return nil, errUsage.WithDetail(fmt.Sprintf("grpc_overrides[%s]: %v", k, err))
		}
		out[c] = int(g)
	}
	return out, nil
}

// parseGRPCCode accepts a canonical gRPC code name (NOT_FOUND, Unavailable,
// deadline-exceeded) or its number.
func parseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	arg := s
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		arg = strconv.Quote(grpcName(s))
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(arg)); err != nil {
		return 0, err
	}
	return c, nil
}

// grpcName converts a CamelCase or dashed gRPC code name into the
// upper-snake form used by the gRPC JSON mapping.
func grpcName(s string) string {
	if strings.ContainsAny(s, "_-") || strings.ToUpper(s) == s {
		return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
