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

// Command daqerr inspects native status codes and serialized failures.
//
//	daqerr list
//	daqerr explain NOT_FOUND channel ch1
//	daqerr explain 0x80000018 --format json
//	daqerr decode failure.json
package main

import (
	"fmt"
	"io"
	"os"

	"dirpx.dev/daqerr"
	"dirpx.dev/daqerr/daqlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := zap.NewDevelopment(zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "daqerr: logger: %v\n", err)
		os.Exit(1)
	}
	code := run(logger, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	_ = logger.Sync()
	os.Exit(code)
}

// run executes the command line and returns the process exit code. Usage
// errors are printed to stderr; other errors are reported through logger
// under the name of the subcommand that failed.
func run(logger *zap.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(logger)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	code := exitCode(err)
	if code == 2 {
		fmt.Fprintf(stderr, "%s: %v\n", root.Name(), err)
		return code
	}
	action := root.Name()
	if cmd != nil {
		action = cmd.Name()
	}
	daqlog.Report(logger, action, err)
	return code
}

// exitCode maps usage errors to 2 and everything else to 1.
func exitCode(err error) int {
	if daqerr.HasCode(err, errUsage.Code()) {
		return 2
	}
	return 1
}
