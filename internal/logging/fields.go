// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"

	// Configuration fields.
	FieldQuery      = "query"
	FieldIgnoreCase = "ignore_case"
	FieldFormat     = "format"
	FieldColor      = "color"

	// Statistics fields.
	FieldBytes       = "bytes"
	FieldLines       = "lines"
	FieldMatches     = "matches"
	FieldOccurrences = "occurrences"
	FieldLanguage    = "language"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
