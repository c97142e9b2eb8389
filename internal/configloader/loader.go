// Package configloader resolves mdnorm configuration from config files,
// environment variables, and CLI flags.
//
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (MDNORM_*)
//  3. Explicit config file (--config)
//  4. Project config (.mdnorm.yml upward search)
//  5. A .markdownlint.json found alongside it (migrated keys)
//  6. Defaults
//
// A malformed or unreadable config file is never fatal: the loader falls
// back to defaults and records a warning.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdnorm/pkg/config"
)

// Project config file names, probed in order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{".mdnorm.yml", ".mdnorm.yaml"}

// markdownlintConfigName is the markdownlint config probed as a fallback.
const markdownlintConfigName = ".markdownlint.json"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags; its non-zero
	// fields take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	switch {
	case opts.ExplicitPath != "":
		result.loadFile(cfg, opts.ExplicitPath)
	default:
		if path := discoverProjectConfig(workDir); path != "" {
			result.loadFile(cfg, path)
		} else if path := discoverUpward(workDir, markdownlintConfigName); path != "" {
			result.loadMarkdownlint(cfg, path)
		}
	}

	if !opts.IgnoreEnv {
		if warns := applyEnv(cfg); len(warns) > 0 {
			result.Warnings = append(result.Warnings, warns...)
		}
	}

	if opts.CLIConfig != nil {
		mergeCLI(cfg, opts.CLIConfig)
	}

	result.Warnings = append(result.Warnings, sanitize(cfg)...)

	result.Config = cfg
	return result, nil
}

// loadFile merges a YAML or markdownlint JSON config file into cfg.
// Failures leave cfg untouched and add a warning.
func (r *LoadResult) loadFile(cfg *config.Config, path string) {
	if strings.HasSuffix(path, ".json") {
		r.loadMarkdownlint(cfg, path)
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("cannot read config %s, using defaults: %v", path, err))
		return
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("cannot parse config %s, using defaults: %v", path, err))
		return
	}
	r.LoadedFrom = append(r.LoadedFrom, path)
}

// loadMarkdownlint merges the relevant keys of a markdownlint JSON config.
func (r *LoadResult) loadMarkdownlint(cfg *config.Config, path string) {
	if err := MigrateMarkdownlint(cfg, path); err != nil {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("cannot load %s, using defaults: %v", path, err))
		return
	}
	r.LoadedFrom = append(r.LoadedFrom, path)
}

// discoverProjectConfig searches workDir and its parents for a project
// config file, returning the first hit or "".
func discoverProjectConfig(workDir string) string {
	for _, name := range projectConfigNames {
		if path := discoverUpward(workDir, name); path != "" {
			return path
		}
	}
	return ""
}

// discoverUpward walks from dir to the filesystem root looking for name.
func discoverUpward(dir, name string) string {
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeCLI overlays explicitly set CLI values onto cfg. Zero values mean
// "not set" for the numeric and string fields flags can carry.
func mergeCLI(cfg, cli *config.Config) {
	if cli.LineLength > 0 {
		cfg.LineLength = cli.LineLength
	}
	if cli.HeadingStyle != "" {
		cfg.HeadingStyle = cli.HeadingStyle
	}
	if cli.ListIndentWidth > 0 {
		cfg.ListIndentWidth = cli.ListIndentWidth
	}
	if len(cli.Ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, cli.Ignore...)
	}
	if len(cli.Fixes) > 0 {
		cfg.Fixes = cli.Fixes
	}
	if cli.Jobs > 0 {
		cfg.Jobs = cli.Jobs
	}
	cfg.DryRun = cli.DryRun
}

// sanitize replaces out-of-range values with defaults, returning one
// warning per substitution.
func sanitize(cfg *config.Config) []string {
	var warns []string

	if cfg.LineLength <= 0 {
		warns = append(warns, fmt.Sprintf("invalid line_length %d, using %d",
			cfg.LineLength, config.DefaultLineLength))
		cfg.LineLength = config.DefaultLineLength
	}
	if !cfg.HeadingStyle.IsValid() {
		warns = append(warns, fmt.Sprintf("invalid heading_style %q, using %q",
			cfg.HeadingStyle, config.HeadingATX))
		cfg.HeadingStyle = config.HeadingATX
	}
	if cfg.ListIndentWidth <= 0 {
		warns = append(warns, fmt.Sprintf("invalid list_indent %d, using %d",
			cfg.ListIndentWidth, config.DefaultListIndentWidth))
		cfg.ListIndentWidth = config.DefaultListIndentWidth
	}

	return warns
}
