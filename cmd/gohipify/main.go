// Package main is the entry point for the gohipify CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gohipify/internal/cli"
	"github.com/yaklabco/gohipify/internal/logging"

	// Import matchers package to register built-in matchers via init().
	_ "github.com/yaklabco/gohipify/pkg/translate/matchers"
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
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// A bare ExitError carries the process exit code; it is a signal,
		// not something to log.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if _, bare := err.(*cli.ExitError); !bare {
				logger := logging.Default()
				logger.Error("command failed", logging.FieldError, err)
			}
			return exitErr.Code
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return 0
}
