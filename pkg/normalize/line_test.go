package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFencePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		delimiter bool
		bare      bool
	}{
		{"```", true, true},
		{"``` ", true, true},
		{"```go", true, false},
		{"  ```", true, false},
		{"``", false, false},
		{"text", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.delimiter, IsFenceDelimiter(tt.line), "IsFenceDelimiter(%q)", tt.line)
		assert.Equal(t, tt.bare, IsBareFence(tt.line), "IsBareFence(%q)", tt.line)
	}
}

func TestListPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		ordered   bool
		unordered bool
	}{
		{"1. item", true, false},
		{"  42. item", true, false},
		{"- item", false, true},
		{"* item", false, true},
		{"+ item", false, true},
		{"  - item", false, true},
		{"-item", false, false},
		{"1.item", false, false},
		{"text", false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ordered, IsOrderedItem(tt.line), "IsOrderedItem(%q)", tt.line)
		assert.Equal(t, tt.unordered, IsUnorderedItem(tt.line), "IsUnorderedItem(%q)", tt.line)
		assert.Equal(t, tt.ordered || tt.unordered, IsListItem(tt.line), "IsListItem(%q)", tt.line)
	}
}

func TestParseOrderedItem(t *testing.T) {
	t.Parallel()

	indent, text, ok := parseOrderedItem("  3. do the thing")
	assert.True(t, ok)
	assert.Equal(t, "  ", indent)
	assert.Equal(t, "do the thing", text)

	_, _, ok = parseOrderedItem("- not ordered")
	assert.False(t, ok)
}

func TestParseATXHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		wantLevel int
		wantText  string
		wantOK    bool
	}{
		{"# Title", 1, "Title", true},
		{"### Deep one", 3, "Deep one", true},
		{"## Closed ##", 2, "Closed", true},
		{"###### Six", 6, "Six", true},
		{"####### Seven", 0, "", false},
		{"#NoSpace", 0, "", false},
		{"text", 0, "", false},
	}

	for _, tt := range tests {
		level, text, ok := parseATXHeading(tt.line)
		assert.Equal(t, tt.wantOK, ok, "parseATXHeading(%q)", tt.line)
		assert.Equal(t, tt.wantLevel, level, "parseATXHeading(%q) level", tt.line)
		assert.Equal(t, tt.wantText, text, "parseATXHeading(%q) text", tt.line)
	}
}

func TestIsSetextUnderline(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSetextUnderline("====="))
	assert.True(t, IsSetextUnderline("-"))
	assert.True(t, IsSetextUnderline("  ---  "))
	assert.False(t, IsSetextUnderline("=-="))
	assert.False(t, IsSetextUnderline(""))
	assert.False(t, IsSetextUnderline("text"))
}

func TestIndentHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", leadingIndent("text"))
	assert.Equal(t, "  ", leadingIndent("  text"))
	assert.Equal(t, "\t", leadingIndent("\ttext"))
	assert.Equal(t, 4, indentWidth("    text"))
	assert.Equal(t, 0, indentWidth(""))
}

func TestRegionTracker(t *testing.T) {
	t.Parallel()

	var tracker RegionTracker

	assert.False(t, tracker.InCodeBlock())
	assert.False(t, tracker.Observe("text"))

	assert.True(t, tracker.Observe("```go"))
	assert.True(t, tracker.InCodeBlock())

	assert.False(t, tracker.Observe("code line"))
	assert.True(t, tracker.InCodeBlock())

	assert.True(t, tracker.Observe("```"))
	assert.False(t, tracker.InCodeBlock())
}
