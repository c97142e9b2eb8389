package normalize

import (
	"regexp"
	"strings"
)

// Line classification predicates shared by every pass. All predicates are
// stateless; code-block context comes from RegionTracker.
//
//nolint:gochecknoglobals // Read-only compiled patterns.
var (
	bareFenceRe     = regexp.MustCompile("^```\\s*$")
	orderedItemRe   = regexp.MustCompile(`^(\s*)(\d+)\.\s(.*)$`)
	unorderedItemRe = regexp.MustCompile(`^(\s*)[-*+]\s`)
	atxHeadingRe    = regexp.MustCompile(`^(#+)\s+(.+?)(\s+#+)?$`)
)

// IsFenceDelimiter reports whether the line toggles code-block state.
// Any line whose trimmed form starts with a triple backtick is a delimiter,
// with or without a language token.
func IsFenceDelimiter(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// IsBareFence reports whether the line is a fence delimiter with no
// language token (only trailing whitespace allowed).
func IsBareFence(line string) bool {
	return bareFenceRe.MatchString(line)
}

// IsBlank reports whether the line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsHeadingLike reports whether the line starts a heading after trimming.
// Used by the blank-line and wrap passes, which only need the cheap check.
func IsHeadingLike(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// IsOrderedItem reports whether the line is an ordered-list item.
func IsOrderedItem(line string) bool {
	return orderedItemRe.MatchString(line)
}

// IsUnorderedItem reports whether the line is an unordered-list item.
func IsUnorderedItem(line string) bool {
	return unorderedItemRe.MatchString(line)
}

// IsListItem reports whether the line is any list item.
func IsListItem(line string) bool {
	return IsOrderedItem(line) || IsUnorderedItem(line)
}

// parseOrderedItem splits an ordered-list item into its leading whitespace
// and the text after "N. ". ok is false for non-items.
func parseOrderedItem(line string) (indent, text string, ok bool) {
	m := orderedItemRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[3], true
}

// parseATXHeading splits an ATX heading into its level and trimmed text,
// with any trailing closing-hash run already stripped. ok is false for
// non-headings and for leading runs longer than six hashes.
func parseATXHeading(line string) (level int, text string, ok bool) {
	m := atxHeadingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	level = len(m[1])
	if level > 6 {
		return 0, "", false
	}
	return level, strings.TrimSpace(m[2]), true
}

// IsSetextUnderline reports whether the line consists solely of repeated
// '=' or '-' characters (at least one, surrounding whitespace ignored).
func IsSetextUnderline(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	ch := trimmed[0]
	if ch != '=' && ch != '-' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

// leadingIndent returns the leading whitespace of the line.
func leadingIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// indentWidth returns the number of leading whitespace characters.
func indentWidth(line string) int {
	return len(leadingIndent(line))
}
