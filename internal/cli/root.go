// Package cli provides the Cobra command structure for mdnorm.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnorm/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdnorm command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "mdnorm",
		Short: "Normalize Markdown documents to a fixed set of style rules",
		Long: `mdnorm rewrites Markdown documents to satisfy a fixed set of style
rules: line length, fenced-code-block language tags, ordered-list
numbering, heading style, list indentation, trailing whitespace, and
blank-line placement around block elements.

Fixes are applied in place, or reported as a unified diff with
--dry-run. Configuration is read from .mdnorm.yml or, failing that,
the relevant keys of a .markdownlint.json.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newFixesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
