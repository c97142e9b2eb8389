package normalize

import "fmt"

// listContext maps an exact leading-whitespace string to the next ordinal
// for the ordered list at that indentation. Keying by the literal prefix
// rather than a computed depth lets lists at different indents renumber
// independently without scope inference.
type listContext map[string]int

// endsLists removes every tracked indentation whose key length is greater
// than or equal to nextIndent, modeling "the list at this depth has ended".
func (c listContext) endsLists(nextIndent int) {
	for indent := range c {
		if len(indent) >= nextIndent {
			delete(c, indent)
		}
	}
}

// renumberOrderedLists recomputes ordered-list numbering per indentation.
// Within one contiguous run at a given indentation, ordinals are assigned
// 1, 2, 3, ... regardless of the numbers found in the source. A counter
// resets when the previous non-blank line was not an ordered item at the
// same indentation; blank lines end every list at or below the indentation
// of the next non-blank line.
func renumberOrderedLists(lines []string, _ Options) []string {
	out := make([]string, len(lines))
	counters := make(listContext)
	var tracker RegionTracker

	for i, line := range lines {
		if tracker.Observe(line) || tracker.InCodeBlock() {
			out[i] = line
			continue
		}

		if indent, text, ok := parseOrderedItem(line); ok {
			if !continuesRun(lines, i, indent) {
				counters[indent] = 1
			}
			num := counters[indent]
			if num == 0 {
				num = 1
			}
			counters[indent] = num + 1
			out[i] = fmt.Sprintf("%s%d. %s", indent, num, text)
			continue
		}

		out[i] = line

		if IsBlank(line) {
			counters.endsLists(nextNonBlankIndent(lines, i+1))
		}
	}

	return out
}

// continuesRun reports whether the previous non-blank line before index i
// is an ordered item at the given indentation, i.e. whether line i extends
// an existing run rather than starting a new one. Non-item lines indented
// deeper than the item are wrapped-item continuations and are skipped, so
// a run survives its items being wrapped.
func continuesRun(lines []string, i int, indent string) bool {
	for j := i - 1; j >= 0; j-- {
		if IsBlank(lines[j]) {
			continue
		}
		if !IsListItem(lines[j]) && indentWidth(lines[j]) > len(indent) {
			continue
		}
		prevIndent, _, ok := parseOrderedItem(lines[j])
		return ok && prevIndent == indent
	}
	return false
}

// nextNonBlankIndent returns the indentation width of the next non-blank
// line at or after index i, or 0 at end of document so that all tracked
// lists end.
func nextNonBlankIndent(lines []string, i int) int {
	for ; i < len(lines); i++ {
		if !IsBlank(lines[i]) {
			return indentWidth(lines[i])
		}
	}
	return 0
}
