// Package main is the entry point for the mdnorm CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdnorm/internal/cli"
	"github.com/yaklabco/mdnorm/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrFilesFailed is already reported per-file; it only carries
		// the exit code.
		if !errors.Is(err, cli.ErrFilesFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitCodeFromError(nil)
}
