package normalize

import "strings"

// normalizeListIndent rewrites the leading whitespace of unordered list
// items to an exact multiple of the configured indent width. The nesting
// level is quantized from the existing indentation (floor division); no
// attempt is made to infer parent/child structure.
func normalizeListIndent(lines []string, opts Options) []string {
	width := opts.ListIndentWidth
	if width <= 0 {
		width = 2
	}

	out := make([]string, len(lines))
	var tracker RegionTracker

	for i, line := range lines {
		if tracker.Observe(line) || tracker.InCodeBlock() {
			out[i] = line
			continue
		}

		if !IsUnorderedItem(line) {
			out[i] = line
			continue
		}

		level := indentWidth(line) / width
		out[i] = strings.Repeat(" ", level*width) + strings.TrimLeft(line, " \t")
	}

	return out
}
