// Package normalize implements the line-scanning transformation pipeline
// that rewrites Markdown documents to satisfy a fixed set of style rules.
//
// The document is split into lines and each pass produces a new line
// sequence feeding the next pass, in a fixed order: trailing whitespace,
// fence language tags, ordered-list renumbering, list indentation, heading
// style, blank-line placement, line wrapping. Order matters: blank-line
// normalization must see final list and heading shapes, and line wrapping
// must not re-break lines other passes already restructured.
//
// Every pass is a total function over arbitrary text. Malformed input
// degrades to pass-through; no pass ever fails.
package normalize

import (
	"slices"
	"strings"

	"github.com/yaklabco/mdnorm/pkg/config"
)

// Fix group names accepted by Options.Fixes and the --fix flag.
const (
	FixWhitespace = "whitespace"
	FixCodeBlocks = "code-blocks"
	FixLists      = "lists"
	FixHeadings   = "headings"
	FixBlankLines = "blank-lines"
	FixLineLength = "line-length"
	FixAll        = "all"
)

// FixNames returns the valid fix group names in pipeline order.
func FixNames() []string {
	return []string{
		FixWhitespace, FixCodeBlocks, FixLists,
		FixHeadings, FixBlankLines, FixLineLength, FixAll,
	}
}

// FixDescriptions maps each fix group name to a short description.
func FixDescriptions() map[string]string {
	return map[string]string{
		FixWhitespace: "remove trailing spaces and tabs from every line",
		FixCodeBlocks: "add a language tag to bare ``` fence openers",
		FixLists:      "renumber ordered lists and align unordered-list indentation",
		FixHeadings:   "convert headings to the configured ATX or setext style",
		FixBlankLines: "enforce blank lines around headings, lists, and fences",
		FixLineLength: "wrap lines that exceed the configured maximum length",
		FixAll:        "apply every fix group",
	}
}

// IsValidFixName reports whether name is a known fix group.
func IsValidFixName(name string) bool {
	return slices.Contains(FixNames(), name)
}

// Options controls pipeline behavior. The pipeline never mutates it; all
// per-document state lives inside a single Normalize call, so one Options
// value may be shared by concurrent workers.
type Options struct {
	// LineLength is the maximum line length before wrapping.
	LineLength int

	// HeadingStyle is the target heading style.
	HeadingStyle config.HeadingStyle

	// ListIndentWidth is the unordered-list indentation width.
	ListIndentWidth int

	// Fixes selects which fix groups run. Empty or containing "all"
	// enables everything.
	Fixes []string
}

// DefaultOptions returns Options with the default configuration values.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewConfig())
}

// OptionsFromConfig maps a resolved Config onto pipeline Options,
// substituting defaults for out-of-range values.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		LineLength:      config.DefaultLineLength,
		HeadingStyle:    config.HeadingATX,
		ListIndentWidth: config.DefaultListIndentWidth,
	}
	if cfg == nil {
		return opts
	}
	if cfg.LineLength > 0 {
		opts.LineLength = cfg.LineLength
	}
	if cfg.HeadingStyle.IsValid() {
		opts.HeadingStyle = cfg.HeadingStyle
	}
	if cfg.ListIndentWidth > 0 {
		opts.ListIndentWidth = cfg.ListIndentWidth
	}
	opts.Fixes = cfg.Fixes
	return opts
}

// enabled reports whether the named fix group should run.
func (o Options) enabled(name string) bool {
	if len(o.Fixes) == 0 {
		return true
	}
	return slices.Contains(o.Fixes, FixAll) || slices.Contains(o.Fixes, name)
}

// Pass is one full-document transform in the pipeline.
type Pass struct {
	// Name is the fix group this pass belongs to.
	Name string

	// Apply transforms a line sequence into a new one.
	Apply func(lines []string, opts Options) []string
}

// Passes returns the pipeline passes in execution order.
func Passes() []Pass {
	return []Pass{
		{Name: FixWhitespace, Apply: trimTrailingWhitespace},
		{Name: FixCodeBlocks, Apply: tagBareFences},
		{Name: FixLists, Apply: renumberOrderedLists},
		{Name: FixLists, Apply: normalizeListIndent},
		{Name: FixHeadings, Apply: convertHeadingStyle},
		{Name: FixBlankLines, Apply: normalizeBlankLines},
		{Name: FixLineLength, Apply: wrapLongLines},
	}
}

// Normalize runs the enabled passes over content and returns the corrected
// content plus whether anything changed. The input is never mutated; each
// pass produces a fresh line sequence.
func Normalize(content string, opts Options) (string, bool) {
	lines := strings.Split(content, "\n")

	for _, pass := range Passes() {
		if opts.enabled(pass.Name) {
			lines = pass.Apply(lines, opts)
		}
	}

	result := strings.Join(lines, "\n")
	return result, result != content
}
