// Package cli provides the Cobra command structure for gohipify.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohipify/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gohipify command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gohipify",
		Short: "A fast CUDA-to-HIP source translator",
		Long: `gohipify is a fast, automated CUDA-to-HIP source translator written in Go.

It parses CUDA kernel sources under both host and device compilation views,
matches CUDA runtime and driver constructs against a built-in rename table,
and rewrites them to their HIP equivalents. Translation is safe by default:
conflict detection, dry-run mode, unified diffs, and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTranslateCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newMatchersCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
