package normalize

// RegionTracker tracks whether the current scan position is inside a
// fenced code block. Code blocks do not nest: every fence delimiter
// toggles the state. An unterminated fence leaves the tracker inside a
// block through end of document, so all remaining lines are treated as
// code; that is accepted behavior, not corrected.
type RegionTracker struct {
	inCodeBlock bool
}

// Observe processes one line in document order, toggling the state on
// fence delimiters. It returns true when the line is a delimiter; callers
// must emit delimiter lines unmodified.
func (t *RegionTracker) Observe(line string) bool {
	if IsFenceDelimiter(line) {
		t.inCodeBlock = !t.inCodeBlock
		return true
	}
	return false
}

// InCodeBlock reports whether the last observed line was inside a fence.
// For a delimiter line itself, this reports the state after the toggle:
// true right after an opening fence, false right after a closing one.
func (t *RegionTracker) InCodeBlock() bool {
	return t.inCodeBlock
}
