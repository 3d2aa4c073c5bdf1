// Package reporter writes search results to an output stream.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/linegrep/pkg/runner"
)

// Reporter formats and writes search results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of matching lines reported and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

//nolint:gochecknoglobals // Read-only lookup table.
var constructors = map[Format]func(Options) Reporter{
	FormatText: func(opts Options) Reporter { return NewTextReporter(opts) },
	FormatJSON: func(opts Options) Reporter { return NewJSONReporter(opts) },
}

// New creates the Reporter selected by opts.Format. A nil writer falls back to
// stdout and an empty format to text.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	opts.Format = format

	return constructors[format](opts), nil
}
