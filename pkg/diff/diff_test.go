package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnorm/pkg/diff"
)

func TestComputeIdentical(t *testing.T) {
	t.Parallel()

	assert.Nil(t, diff.Compute("f.md", "same\n", "same\n"))
	assert.Nil(t, diff.Compute("f.md", "", ""))
}

func TestComputeSingleChange(t *testing.T) {
	t.Parallel()

	d := diff.Compute("docs/f.md", "one\ntwo\nthree\n", "one\n2\nthree\n")
	require.NotNil(t, d)

	assert.Equal(t, "docs/f.md", d.Path)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)
	require.Len(t, d.Hunks, 1)

	hunk := d.Hunks[0]
	assert.Equal(t, 1, hunk.OriginalStart)
	assert.Equal(t, 3, hunk.OriginalCount)
	assert.Equal(t, 1, hunk.ModifiedStart)
	assert.Equal(t, 3, hunk.ModifiedCount)

	want := []diff.Line{
		{Kind: diff.Context, Content: "one"},
		{Kind: diff.Remove, Content: "two"},
		{Kind: diff.Add, Content: "2"},
		{Kind: diff.Context, Content: "three"},
	}
	assert.Equal(t, want, hunk.Lines)
}

func TestComputeAddOnly(t *testing.T) {
	t.Parallel()

	d := diff.Compute("f.md", "a\nb\n", "a\nnew\nb\n")
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 0, d.Deletions)
}

func TestComputeDistantChangesSeparateHunks(t *testing.T) {
	t.Parallel()

	var orig, mod strings.Builder
	orig.WriteString("first-old\n")
	mod.WriteString("first-new\n")
	for range 20 {
		orig.WriteString("same\n")
		mod.WriteString("same\n")
	}
	orig.WriteString("last-old\n")
	mod.WriteString("last-new\n")

	d := diff.Compute("f.md", orig.String(), mod.String())
	require.NotNil(t, d)
	assert.Len(t, d.Hunks, 2)
	assert.Equal(t, 2, d.Additions)
	assert.Equal(t, 2, d.Deletions)
}

func TestDiffString(t *testing.T) {
	t.Parallel()

	d := diff.Compute("/abs/path/f.md", "old\n", "new\n")
	require.NotNil(t, d)

	out := d.String()
	assert.Contains(t, out, "--- a/abs/path/f.md\n")
	assert.Contains(t, out, "+++ b/abs/path/f.md\n")
	assert.Contains(t, out, "@@ -1,1 +1,1 @@\n")
	assert.Contains(t, out, "-old\n")
	assert.Contains(t, out, "+new\n")
}

func TestDiffStringNil(t *testing.T) {
	t.Parallel()

	var d *diff.Diff
	assert.Equal(t, "", d.String())
}
