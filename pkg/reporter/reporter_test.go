package reporter_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdnorm/pkg/diff"
	"github.com/yaklabco/mdnorm/pkg/reporter"
	"github.com/yaklabco/mdnorm/pkg/runner"
)

func newPlainReporter(buf *bytes.Buffer, dryRun bool) *reporter.Reporter {
	return reporter.New(reporter.Options{
		Writer: buf,
		Color:  "never",
		DryRun: dryRun,
	})
}

func TestReportNilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newPlainReporter(&buf, false).Report(nil))
	assert.Empty(t, buf.String())
}

func TestReportNothingToFix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	result := &runner.Result{
		Stats: runner.Stats{FilesDiscovered: 3, FilesProcessed: 3},
	}

	require.NoError(t, newPlainReporter(&buf, false).Report(result))
	assert.Contains(t, buf.String(), "nothing to fix in 3 files")
}

func TestReportFixedSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	result := &runner.Result{
		Stats: runner.Stats{
			FilesDiscovered: 5,
			FilesProcessed:  5,
			FilesChanged:    2,
			FilesWritten:    2,
		},
	}

	require.NoError(t, newPlainReporter(&buf, false).Report(result))
	assert.Contains(t, buf.String(), "fixed 2 of 5 files")
}

func TestReportDryRunSummaryAndDiff(t *testing.T) {
	t.Parallel()

	d := diff.Compute("/work/f.md", "old line\n", "new line\n")
	require.NotNil(t, d)

	var buf bytes.Buffer
	rep := reporter.New(reporter.Options{
		Writer:     &buf,
		Color:      "never",
		WorkingDir: "/work",
		DryRun:     true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/f.md", Changed: true, Diff: d},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesProcessed: 1, FilesChanged: 1},
	}

	require.NoError(t, rep.Report(result))

	out := buf.String()
	assert.Contains(t, out, "[dry run] would fix 1 of 1 files")
	assert.Contains(t, out, "--- a/f.md")
	assert.Contains(t, out, "+++ b/f.md")
	assert.Contains(t, out, "-old line")
	assert.Contains(t, out, "+new line")
}

func TestReportErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "bad.md", Error: errors.New("read bad.md: permission denied")},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesErrored: 1},
	}

	require.NoError(t, newPlainReporter(&buf, false).Report(result))

	out := buf.String()
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "1 files could not be processed")
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, reporter.ColorEnabled("always", nil))
	assert.False(t, reporter.ColorEnabled("never", nil))
	assert.False(t, reporter.ColorEnabled("auto", nil), "nil output defaults to plain")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, reporter.ColorEnabled("auto", nil))
	assert.True(t, reporter.ColorEnabled("always", nil), "always overrides NO_COLOR")
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	plain := reporter.NewStyles(false)
	assert.Equal(t, "text", plain.Success.Render("text"))

	colored := reporter.NewStyles(true)
	assert.NotNil(t, colored)
}
