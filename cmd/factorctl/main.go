// SPDX-License-Identifier: MIT

// Command factorctl runs discrete factor algebra over YAML factor files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpgm/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = commit

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
