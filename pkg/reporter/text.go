package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/linegrep/internal/ui/pretty"
	"github.com/yaklabco/linegrep/pkg/runner"
)

// TextReporter writes the file content followed by the highlighted matches.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
//
// Output has two sections: "content:" with the literal file content, then
// "found:" with one line per match. The content section is skipped when
// ShowContent is false. A nil result writes nothing.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	if r.opts.ShowContent {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.FormatSectionHeader("content"))
		fmt.Fprintln(r.bw, result.Content)
	}

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatSectionHeader("found"))

	for _, match := range result.Matches {
		number := 0
		if r.opts.LineNumbers {
			number = match.Number
		}
		fmt.Fprintln(r.bw, r.styles.FormatMatchLine(number, match.Text, slices.Values(match.Spans)))
	}

	return len(result.Matches), nil
}
