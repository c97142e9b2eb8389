// Package diff computes unified diffs between original and normalized
// document content, used for dry-run reporting.
package diff

import (
	"fmt"
	"strings"
)

// LineKind indicates the type of a diff line.
type LineKind int

const (
	// Context is an unchanged line shown for context.
	Context LineKind = iota

	// Add is a line present only in the modified content.
	Add

	// Remove is a line present only in the original content.
	Remove
)

// Line is a single line in a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is one contiguous region of changes with surrounding context.
type Hunk struct {
	// OriginalStart and ModifiedStart are 1-based line numbers.
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []Line
}

// Diff is a unified diff for one file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Compute returns the unified diff between original and modified content,
// or nil when they are identical.
func Compute(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)

	hunks := computeHunks(origLines, modLines)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case Add:
				d.Additions++
			case Remove:
				d.Deletions++
			}
		}
	}
	return d
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case Context:
				fmt.Fprintf(&b, " %s\n", line.Content)
			case Add:
				fmt.Fprintf(&b, "+%s\n", line.Content)
			case Remove:
				fmt.Fprintf(&b, "-%s\n", line.Content)
			}
		}
	}

	return b.String()
}

// splitLines splits content into lines, dropping a trailing empty element
// when the content ends with a newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// op is a single diff operation.
type op struct {
	kind    LineKind
	content string
}

// computeHunks builds hunks from an LCS-based line diff.
func computeHunks(orig, mod []string) []Hunk {
	ops := buildOps(orig, mod, longestCommonSubsequence(orig, mod))
	if len(ops) == 0 {
		return nil
	}
	return groupIntoHunks(ops)
}

// buildOps walks original, modified, and their LCS to produce diff
// operations in order.
func buildOps(orig, mod, lcs []string) []op {
	var ops []op
	oi, mi, li := 0, 0, 0

	for oi < len(orig) || mi < len(mod) {
		if li < len(lcs) && oi < len(orig) && mi < len(mod) &&
			orig[oi] == lcs[li] && mod[mi] == lcs[li] {
			ops = append(ops, op{kind: Context, content: orig[oi]})
			oi++
			mi++
			li++
			continue
		}

		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, op{kind: Remove, content: orig[oi]})
			oi++
		}
		for mi < len(mod) && (li >= len(lcs) || mod[mi] != lcs[li]) {
			ops = append(ops, op{kind: Add, content: mod[mi]})
			mi++
		}
	}

	return ops
}

// groupIntoHunks groups operations into hunks, merging change ranges whose
// context windows overlap.
func groupIntoHunks(ops []op) []Hunk {
	type changeRange struct{ start, end int }

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for i, o := range ops {
		isChange := o.kind != Context
		if isChange && !inChange {
			rangeStart = i
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, i})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}
	if len(ranges) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(ranges); {
		end := i + 1
		for end < len(ranges) && ranges[end].start-ranges[end-1].end <= contextLines*2 {
			end++
		}
		hunks = append(hunks, buildHunk(ops, ranges[i].start, ranges[end-1].end))
		i = end
	}
	return hunks
}

// buildHunk assembles one hunk spanning ops[changeStart:changeEnd] plus
// surrounding context.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for i := range start {
		if ops[i].kind != Add {
			hunk.OriginalStart++
		}
		if ops[i].kind != Remove {
			hunk.ModifiedStart++
		}
	}

	for i := start; i < end; i++ {
		hunk.Lines = append(hunk.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})
		switch ops[i].kind {
		case Context:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case Remove:
			hunk.OriginalCount++
		case Add:
			hunk.ModifiedCount++
		}
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two line slices.
func longestCommonSubsequence(orig, mod []string) []string {
	if len(orig) == 0 || len(mod) == 0 {
		return nil
	}

	dp := make([][]int, len(orig)+1)
	for i := range dp {
		dp[i] = make([]int, len(mod)+1)
	}

	for row := 1; row <= len(orig); row++ {
		for col := 1; col <= len(mod); col++ {
			if orig[row-1] == mod[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	length := dp[len(orig)][len(mod)]
	if length == 0 {
		return nil
	}

	lcs := make([]string, length)
	row, col, idx := len(orig), len(mod), length-1
	for row > 0 && col > 0 {
		switch {
		case orig[row-1] == mod[col-1]:
			lcs[idx] = orig[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}

	return lcs
}
