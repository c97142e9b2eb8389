package normalize

import (
	"regexp"
	"strings"
)

// breakTokens is the priority-ordered candidate set of textual delimiters
// for breaking over-length lines. Every token ends with a space; the break
// lands just before that trailing space so punctuation and conjunctions
// stay on the first line. The rightmost qualifying occurrence wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var breakTokens = []string{
	". ", ", ", ": ", "; ", " - ", " and ", " or ", " but ",
}

// markdownLinkRe matches an inline link with an http(s) target.
//
//nolint:gochecknoglobals // Read-only compiled pattern.
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(http[^)]+\)`)

// wrapLongLines breaks lines exceeding the configured length at the best
// available breakpoint. Code blocks and headings are exempt. A line with
// no break point short of the limit (a single unbreakable token) is
// emitted unchanged: do not mangle. Continuation lines are wrapped again
// until every produced line fits or cannot be broken, so a second pipeline
// run leaves the output untouched.
func wrapLongLines(lines []string, opts Options) []string {
	limit := opts.LineLength
	if limit <= 0 {
		limit = 120
	}

	out := make([]string, 0, len(lines))
	var tracker RegionTracker

	for _, line := range lines {
		if tracker.Observe(line) || tracker.InCodeBlock() || IsHeadingLike(line) {
			out = append(out, line)
			continue
		}
		if len(line) <= limit {
			out = append(out, line)
			continue
		}

		if IsListItem(line) {
			out = append(out, wrapListItem(line, limit)...)
			continue
		}
		out = append(out, wrapParagraph(line, limit)...)
	}

	return out
}

// wrapListItem breaks a long list item. The first line keeps the marker;
// continuation lines are indented by the original indent plus the marker
// width so they align with the item text. Aligned continuations keep the
// renumber and blank-line passes treating the item as one unit on the
// next run.
func wrapListItem(line string, limit int) []string {
	indent := indentWidth(line)
	width := indent + 2 // "- ", "* " or "+ " plus the space.
	if m := orderedItemRe.FindStringSubmatch(line); m != nil {
		width = indent + len(m[2]) + 2 // Digits plus ". ".
	}
	prefix := line[:width]
	rest := line[width:]
	window := limit - len(prefix)

	if len(rest) <= window {
		return []string{line}
	}

	brk := findBreakpoint(rest, window)
	if brk <= 0 {
		brk = wordBoundaryBreak(rest, window)
	}
	if brk <= 0 {
		return []string{line}
	}

	head := prefix + strings.TrimRight(rest[:brk], " ")
	remaining := strings.TrimLeft(rest[brk:], " ")
	if remaining == "" {
		return []string{head}
	}

	cont := strings.Repeat(" ", width) + remaining
	if len(cont) <= limit {
		return []string{head, cont}
	}
	return append([]string{head}, wrapParagraph(cont, limit)...)
}

// wrapParagraph breaks a long plain line, keeping the original leading
// indentation for continuation lines. Lines containing an inline http link
// break before the link so the URL itself is never split.
func wrapParagraph(line string, limit int) []string {
	if strings.Contains(line, "](http") {
		if loc := markdownLinkRe.FindStringIndex(line); loc != nil && loc[0] < limit {
			before := strings.TrimRight(line[:loc[0]], " ")
			if before != "" {
				return []string{before, line[loc[0]:]}
			}
			return []string{line}
		}
	}

	indent := leadingIndent(line)
	var out []string

	for len(line) > limit {
		brk := findBreakpoint(line, limit)
		if brk <= 0 {
			return append(out, wordWrap(line, limit)...)
		}

		head := strings.TrimRight(line[:brk], " ")
		remaining := strings.TrimLeft(line[brk:], " ")
		out = append(out, head)
		if remaining == "" {
			return out
		}

		next := indent + remaining
		if len(next) >= len(line) {
			// No progress possible; emit the tail as-is.
			return append(out, next)
		}
		line = next
	}

	return append(out, line)
}

// findBreakpoint returns the byte position to split at: the end of the
// first segment for the rightmost break token occurring entirely within
// the first limit bytes. Returns -1 when no token qualifies.
func findBreakpoint(s string, limit int) int {
	if limit < 0 {
		return -1
	}
	if limit > len(s) {
		limit = len(s)
	}
	window := s[:limit]

	best := -1
	for _, token := range breakTokens {
		pos := strings.LastIndex(window, token)
		if pos < 0 {
			continue
		}
		// Split just before the token's trailing space.
		if end := pos + len(token) - 1; end > best {
			best = end
		}
	}
	return best
}

// wordBoundaryBreak returns the split position at the rightmost word
// boundary fitting within the window, or -1 if even the first word does
// not fit.
func wordBoundaryBreak(s string, window int) int {
	words := strings.Fields(s)
	current := 0
	for i, word := range words {
		if current+len(word)+1 > window {
			if i == 0 {
				return -1
			}
			return current
		}
		current += len(word) + 1
	}
	return -1
}

// wordWrap greedily re-flows a line into multiple lines at word
// boundaries, preserving the original indentation on every line. A single
// unbreakable token is returned unchanged.
func wordWrap(line string, limit int) []string {
	words := strings.Fields(line)
	if len(words) <= 1 {
		return []string{line}
	}

	indent := leadingIndent(line)
	var out []string
	current := indent

	for _, word := range words {
		if current != indent && len(current)+len(word)+1 > limit {
			out = append(out, strings.TrimRight(current, " "))
			current = indent
		}
		if current == indent {
			current += word
		} else {
			current += " " + word
		}
	}
	if strings.TrimSpace(current) != "" {
		out = append(out, strings.TrimRight(current, " "))
	}
	return out
}
