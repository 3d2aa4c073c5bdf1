package runner

import (
	"github.com/yaklabco/linegrep/pkg/highlight"
	"github.com/yaklabco/linegrep/pkg/search"
)

// LineResult is a matching line together with its highlight spans.
type LineResult struct {
	search.Match

	// Spans partition Text into plain and highlighted runs.
	Spans []highlight.Span
}

// Occurrences returns the number of highlighted spans on the line.
func (l LineResult) Occurrences() int {
	count := 0
	for _, span := range l.Spans {
		if span.Highlighted {
			count++
		}
	}
	return count
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Bytes is the size of the content that was searched.
	Bytes int

	// Lines is the number of lines in the content.
	Lines int

	// Matches is the number of matching lines.
	Matches int

	// Occurrences is the number of highlighted spans across all matches.
	Occurrences int
}

// Result is the outcome of searching one file.
type Result struct {
	// Path is the file that was searched.
	Path string

	// Content is the full file content.
	Content string

	// Language is a best-effort guess of the content language.
	Language string

	// Query is the substring that was searched for.
	Query string

	// Mode is the comparison mode used for searching and highlighting.
	Mode search.Mode

	// Matches holds every matching line in original order.
	Matches []LineResult

	// Stats contains aggregate statistics for the run.
	Stats Stats
}
