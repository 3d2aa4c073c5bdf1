package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/linegrep/pkg/highlight"
	"github.com/yaklabco/linegrep/pkg/runner"
	"github.com/yaklabco/linegrep/pkg/search"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version    string      `json:"version"`
	Path       string      `json:"path"`
	Query      string      `json:"query"`
	IgnoreCase bool        `json:"ignoreCase"`
	Language   string      `json:"language"`
	Content    *string     `json:"content,omitempty"`
	Matches    []JSONMatch `json:"matches"`
	Summary    JSONSummary `json:"summary"`
}

// JSONMatch represents a single matching line and its spans.
type JSONMatch struct {
	Line  int              `json:"line"`
	Text  string           `json:"text"`
	Spans []highlight.Span `json:"spans"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Lines       int `json:"lines"`
	Matches     int `json:"matches"`
	Occurrences int `json:"occurrences"`
}

// JSONReporter formats results as a structured span list.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Matches, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Matches: make([]JSONMatch, 0),
	}

	if result == nil {
		return output
	}

	output.Path = result.Path
	output.Query = result.Query
	output.IgnoreCase = result.Mode == search.ModeIgnoreCase
	output.Language = result.Language
	if r.opts.ShowContent {
		content := result.Content
		output.Content = &content
	}

	if len(result.Matches) > 0 {
		output.Matches = make([]JSONMatch, 0, len(result.Matches))
	}
	for _, match := range result.Matches {
		spans := match.Spans
		if spans == nil {
			spans = make([]highlight.Span, 0)
		}
		output.Matches = append(output.Matches, JSONMatch{
			Line:  match.Number,
			Text:  match.Text,
			Spans: spans,
		})
	}

	output.Summary = JSONSummary{
		Lines:       result.Stats.Lines,
		Matches:     result.Stats.Matches,
		Occurrences: result.Stats.Occurrences,
	}

	return output
}
