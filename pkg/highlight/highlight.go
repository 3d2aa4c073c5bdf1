// Package highlight partitions a matched line into plain and highlighted spans.
package highlight

import (
	"iter"
	"strings"

	"github.com/yaklabco/linegrep/pkg/search"
)

// Span is a contiguous byte range of a line.
type Span struct {
	// Start is the byte offset of the span within the line.
	Start int `json:"start"`

	// Len is the length of the span in bytes.
	Len int `json:"length"`

	// Highlighted is true when the span is an occurrence of the query.
	Highlighted bool `json:"highlighted"`
}

// End returns the byte offset just past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Text returns the part of line covered by the span.
func (s Span) Text(line string) string {
	return line[s.Start:s.End()]
}

// Segment is a span resolved to its text.
type Segment struct {
	Text        string
	Highlighted bool
}

// Spans yields a left-to-right partition of line. Each highlighted span is an
// occurrence of query exactly len(query) bytes long; occurrences never overlap
// and are reported first-found-first. Plain spans fill the gaps and are never
// empty. An empty query yields the whole line as a single plain span.
//
// The sequence may be ranged over any number of times.
func Spans(line, query string, mode search.Mode) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if line == "" {
			return
		}
		if query == "" {
			yield(Span{Start: 0, Len: len(line)})
			return
		}

		width := len(query)
		cursor := 0
		for cursor < len(line) {
			offset := mode.Index(line[cursor:], query)
			if offset < 0 {
				yield(Span{Start: cursor, Len: len(line) - cursor})
				return
			}
			if offset > 0 && !yield(Span{Start: cursor, Len: offset}) {
				return
			}
			if !yield(Span{Start: cursor + offset, Len: width, Highlighted: true}) {
				return
			}
			cursor += offset + width
		}
	}
}

// Occurrences returns only the highlighted spans of line.
func Occurrences(line, query string, mode search.Mode) []Span {
	var result []Span
	for span := range Spans(line, query, mode) {
		if span.Highlighted {
			result = append(result, span)
		}
	}
	return result
}

// Collect returns every span of line.
func Collect(line, query string, mode search.Mode) []Span {
	var result []Span
	for span := range Spans(line, query, mode) {
		result = append(result, span)
	}
	return result
}

// Segments resolves the spans of line to text.
func Segments(line, query string, mode search.Mode) []Segment {
	var result []Segment
	for span := range Spans(line, query, mode) {
		result = append(result, Segment{Text: span.Text(line), Highlighted: span.Highlighted})
	}
	return result
}

// Render rebuilds line with style applied to every occurrence of query.
func Render(line, query string, mode search.Mode, style func(string) string) string {
	return RenderSpans(line, Spans(line, query, mode), style)
}

// RenderSpans rebuilds line from spans, applying style to highlighted ones.
func RenderSpans(line string, spans iter.Seq[Span], style func(string) string) string {
	var builder strings.Builder
	builder.Grow(len(line))
	for span := range spans {
		text := span.Text(line)
		if span.Highlighted {
			text = style(text)
		}
		builder.WriteString(text)
	}
	return builder.String()
}
