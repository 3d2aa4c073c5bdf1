package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/linegrep/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color config.ColorMode

	// ShowContent writes the full file content before the matches.
	ShowContent bool

	// LineNumbers prefixes each matching line with its line number.
	LineNumbers bool

	// Compact uses minified JSON output.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowContent: true,
	}
}

// OptionsFromConfig derives reporter options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, w io.Writer) Options {
	opts := DefaultOptions()
	opts.Writer = w
	opts.Format = Format(cfg.Format)
	opts.Color = cfg.Color
	opts.ShowContent = !cfg.NoContent
	opts.LineNumbers = cfg.LineNumbers
	return opts
}
