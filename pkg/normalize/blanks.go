package normalize

// normalizeBlankLines enforces blank-line separation around block
// elements: one blank line before and after a fenced block and a heading,
// and one before the first item of a list run (none between consecutive
// items). A final pass collapses runs of two or more blank lines into one.
//
// This pass runs after list and heading restructuring so its lookahead and
// lookbehind see final shapes; the line wrapper runs after it and its
// output is final text.
func normalizeBlankLines(lines []string, _ Options) []string {
	out := make([]string, 0, len(lines))
	var tracker RegionTracker
	inList := false

	for i, line := range lines {
		switch {
		case tracker.Observe(line):
			inList = false
			if tracker.InCodeBlock() {
				// Opening fence: separate from preceding text.
				if i > 0 && len(out) > 0 && !IsBlank(out[len(out)-1]) {
					out = append(out, "")
				}
				out = append(out, line)
			} else {
				// Closing fence: blank before following text. A heading
				// next inserts its own leading blank in the heading case
				// below, so one blank still lands between fence and heading.
				out = append(out, line)
				if i+1 < len(lines) && !IsBlank(lines[i+1]) && !IsHeadingLike(lines[i+1]) {
					out = append(out, "")
				}
			}

		case tracker.InCodeBlock():
			out = append(out, line)

		case IsHeadingLike(line):
			inList = false
			if i > 0 && len(out) > 0 && !IsBlank(out[len(out)-1]) {
				out = append(out, "")
			}
			out = append(out, line)
			if i+1 < len(lines) && !IsBlank(lines[i+1]) {
				out = append(out, "")
			}

		case IsListItem(line):
			// Blank line before a list run; nothing between items. An
			// indented continuation line keeps the run open, so an item
			// after a wrapped item gets no blank either.
			if len(out) > 0 {
				prev := out[len(out)-1]
				if !IsBlank(prev) && !inList {
					out = append(out, "")
				}
			}
			out = append(out, line)
			inList = true

		default:
			if IsBlank(line) || indentWidth(line) == 0 {
				inList = false
			}
			out = append(out, line)
		}
	}

	return collapseBlankRuns(out)
}

// collapseBlankRuns merges every run of consecutive blank lines into one.
// Blank runs inside fenced code blocks are content and stay as they are.
func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	var tracker RegionTracker
	prevBlank := false
	for _, line := range lines {
		if tracker.Observe(line) || tracker.InCodeBlock() {
			out = append(out, line)
			prevBlank = false
			continue
		}
		if IsBlank(line) {
			if !prevBlank {
				out = append(out, line)
			}
			prevBlank = true
			continue
		}
		out = append(out, line)
		prevBlank = false
	}
	return out
}
