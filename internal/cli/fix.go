package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnorm/internal/configloader"
	"github.com/yaklabco/mdnorm/internal/logging"
	"github.com/yaklabco/mdnorm/pkg/config"
	"github.com/yaklabco/mdnorm/pkg/normalize"
	"github.com/yaklabco/mdnorm/pkg/reporter"
	"github.com/yaklabco/mdnorm/pkg/runner"
)

// ErrFilesFailed is returned when some files could not be processed.
var ErrFilesFailed = errors.New("some files could not be processed")

type fixFlags struct {
	patterns []string
}

func newFixCommand() *cobra.Command {
	cfg := config.Config{}
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix Markdown style issues in files or directories",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show what would change without writing files")
	cmd.Flags().StringSliceVar(&cfg.Fixes, "fix", nil,
		"fixes to apply: line-length, code-blocks, lists, headings, whitespace, blank-lines, all")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVar(&cfg.LineLength, "line-length", 0, "override maximum line length")
	cmd.Flags().StringSliceVar(&cfg.Ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVarP(&flags.patterns, "pattern", "p", nil,
		"glob patterns to match files (default: all .md/.markdown)")

	return cmd
}

const fixLongDescription = `Fix Markdown style issues in files or directories.

By default, fixes all .md and .markdown files in the current directory
and subdirectories. Specify paths to fix specific files or directories.

Examples:
  mdnorm fix                      # Fix current directory
  mdnorm fix docs/ README.md      # Fix a directory and a file
  mdnorm fix --dry-run            # Show a diff without writing
  mdnorm fix --fix lists,headings # Apply a subset of fixes
  mdnorm fix -p 'docs/**/*.md'    # Restrict to a glob pattern`

func runFix(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *fixFlags) error {
	logger := logging.Default()

	for _, name := range cliCfg.Fixes {
		if !normalize.IsValidFixName(name) {
			return fmt.Errorf("unknown fix %q (valid: %v)", name, normalize.FixNames())
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Carry the logger so the runner's workers log through it.
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	finalCfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldLineLength, finalCfg.LineLength,
		logging.FieldHeadingStyle, finalCfg.HeadingStyle,
		logging.FieldListIndentWidth, finalCfg.ListIndentWidth,
		logging.FieldFixes, finalCfg.Fixes,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	run := runner.New(finalCfg.DryRun)
	result, err := run.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		IncludeGlobs: flags.patterns,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	})
	if err != nil {
		if errors.Is(err, runner.ErrNoInputFiles) {
			logger.Error("no markdown files to process",
				logging.FieldPaths, args, logging.FieldPatterns, flags.patterns)
		}
		return err
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Color:      colorMode,
		WorkingDir: workDir,
		DryRun:     finalCfg.DryRun,
	})
	if err := rep.Report(result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return ErrFilesFailed
	}
	return nil
}
