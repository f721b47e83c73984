package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldInPlace = "in_place"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"
	FieldFormat  = "format"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesChanged      = "files_changed"
	FieldFilesWritten      = "files_written"
	FieldReplacementsTotal = "replacements_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Matcher fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
