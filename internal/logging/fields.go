package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldPatterns   = "patterns"
	FieldWorkingDir = "working_dir"

	// Description of a fix group in listing output.
	FieldDescription = "description"

	// Configuration fields.
	FieldConfig          = "config"
	FieldLineLength      = "line_length"
	FieldHeadingStyle    = "heading_style"
	FieldListIndentWidth = "list_indent"
	FieldFixes           = "fixes"
	FieldDryRun          = "dry_run"
	FieldJobs            = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
