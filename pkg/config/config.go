// Package config defines core configuration types for mdnorm.
// These types are pure data structures with no dependency on the config
// loader; the loader populates them and the pipeline reads them by value.
package config

// HeadingStyle specifies the target heading representation.
type HeadingStyle string

const (
	// HeadingATX is the `# Heading` form (levels 1-6).
	HeadingATX HeadingStyle = "atx"

	// HeadingSetext is the underlined form (levels 1-2 only).
	HeadingSetext HeadingStyle = "setext"
)

// IsValid returns true if the heading style is a known value.
func (s HeadingStyle) IsValid() bool {
	switch s {
	case HeadingATX, HeadingSetext:
		return true
	default:
		return false
	}
}

// Default configuration values, matching markdownlint's MD013/MD003/MD007
// defaults for the rules mdnorm fixes.
const (
	DefaultLineLength      = 120
	DefaultListIndentWidth = 2
)

// Config is the root configuration structure for mdnorm.
type Config struct {
	// LineLength is the maximum line length before wrapping applies.
	LineLength int `yaml:"line_length"`

	// HeadingStyle is the target heading style ("atx" or "setext").
	HeadingStyle HeadingStyle `yaml:"heading_style"`

	// ListIndentWidth is the indentation width for unordered lists.
	ListIndentWidth int `yaml:"list_indent"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// DryRun reports what would change without writing files.
	DryRun bool `yaml:"-"`

	// Fixes names the fix subset to apply. Empty or containing "all"
	// means every fix.
	Fixes []string `yaml:"-"`

	// Jobs is the number of parallel workers. 0 means use NumCPU.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LineLength:      DefaultLineLength,
		HeadingStyle:    HeadingATX,
		ListIndentWidth: DefaultListIndentWidth,
	}
}
