// Package reporter renders run results: per-file status, dry-run diffs,
// and an aggregate summary.
package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdnorm/pkg/diff"
	"github.com/yaklabco/mdnorm/pkg/runner"
)

// defaultWidth is used when the output is not a terminal.
const defaultWidth = 80

// Options controls reporter output.
type Options struct {
	// Writer receives the rendered report. Defaults to os.Stdout.
	Writer io.Writer

	// Color is the color mode: "auto", "always", or "never".
	Color string

	// WorkingDir, when set, is stripped from paths for display.
	WorkingDir string

	// DryRun switches the summary wording and enables diff output.
	DryRun bool
}

// Reporter renders runner results as styled text.
type Reporter struct {
	w       io.Writer
	styles  *Styles
	width   int
	workDir string
	dryRun  bool
}

// New creates a Reporter for the given options.
func New(opts Options) *Reporter {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	outFile, _ := w.(*os.File)
	width := defaultWidth
	if outFile != nil {
		if cols, _, err := term.GetSize(int(outFile.Fd())); err == nil && cols > 0 {
			width = cols
		}
	}

	return &Reporter{
		w:       w,
		styles:  NewStyles(ColorEnabled(opts.Color, outFile)),
		width:   width,
		workDir: opts.WorkingDir,
		dryRun:  opts.DryRun,
	}
}

// Report writes the full run report: dry-run diffs, per-file errors, and
// the aggregate summary line.
func (r *Reporter) Report(result *runner.Result) error {
	if result == nil {
		return nil
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			line := fmt.Sprintf("%s: %v",
				r.styles.FilePath.Render(r.displayPath(outcome.Path)), outcome.Error)
			if _, err := fmt.Fprintln(r.w, r.styles.Failure.Render("error"), line); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			continue
		}
		if r.dryRun && outcome.Diff != nil {
			if err := r.renderDiff(outcome.Diff); err != nil {
				return err
			}
		}
	}

	return r.renderSummary(result)
}

// renderDiff writes one file's unified diff with per-line-kind styling.
func (r *Reporter) renderDiff(d *diff.Diff) error {
	header := fmt.Sprintf("--- a/%s\n+++ b/%s", r.displayPath(d.Path), r.displayPath(d.Path))
	if _, err := fmt.Fprintln(r.w, r.styles.DiffHeader.Render(header)); err != nil {
		return fmt.Errorf("write diff: %w", err)
	}

	for _, hunk := range d.Hunks {
		head := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount, hunk.ModifiedStart, hunk.ModifiedCount)
		if _, err := fmt.Fprintln(r.w, r.styles.DiffHunk.Render(head)); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}

		for _, line := range hunk.Lines {
			var rendered string
			switch line.Kind {
			case diff.Add:
				rendered = r.styles.DiffAdd.Render("+" + line.Content)
			case diff.Remove:
				rendered = r.styles.DiffRemove.Render("-" + line.Content)
			default:
				rendered = r.styles.DiffContext.Render(" " + line.Content)
			}
			if _, err := fmt.Fprintln(r.w, rendered); err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}
	}

	_, err := fmt.Fprintln(r.w)
	if err != nil {
		return fmt.Errorf("write diff: %w", err)
	}
	return nil
}

// renderSummary writes the aggregate closing line.
func (r *Reporter) renderSummary(result *runner.Result) error {
	stats := result.Stats

	rule := r.styles.Dim.Render(strings.Repeat("─", min(r.width, defaultWidth)))
	if _, err := fmt.Fprintln(r.w, rule); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	var line string
	switch {
	case r.dryRun:
		line = fmt.Sprintf("[dry run] would fix %d of %d files",
			stats.FilesChanged, stats.FilesDiscovered)
	case stats.FilesChanged == 0:
		line = r.styles.Success.Render("✓") +
			fmt.Sprintf(" nothing to fix in %d files", stats.FilesDiscovered)
	default:
		line = r.styles.Success.Render("✓") +
			fmt.Sprintf(" fixed %d of %d files", stats.FilesWritten, stats.FilesDiscovered)
	}
	if _, err := fmt.Fprintln(r.w, line); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if stats.FilesErrored > 0 {
		errLine := r.styles.Failure.Render(
			fmt.Sprintf("%d files could not be processed", stats.FilesErrored))
		if _, err := fmt.Fprintln(r.w, errLine); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	return nil
}

// displayPath shortens an absolute path relative to the working directory.
func (r *Reporter) displayPath(path string) string {
	if r.workDir == "" {
		return path
	}
	if rel, err := filepath.Rel(r.workDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
