package runner

import "github.com/yaklabco/mdnorm/pkg/diff"

// FileOutcome is the result of processing one file. Failures are isolated:
// an outcome with a non-nil Error never aborts the run.
type FileOutcome struct {
	// Path is the absolute path of the processed file.
	Path string

	// Changed reports whether normalization altered the content.
	Changed bool

	// Written reports whether the file was rewritten on disk. Always
	// false in dry-run mode.
	Written bool

	// Diff holds the dry-run unified diff, nil when nothing changed or
	// the run is not a dry run.
	Diff *diff.Diff

	// Error is set if the file could not be read or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesChanged is the number of files normalization would alter.
	FilesChanged int

	// FilesWritten is the number of files actually rewritten on disk.
	FilesWritten int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int
}

// Result is the overall runner result. Files are ordered deterministically
// by path regardless of worker completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the aggregate stats with one outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
