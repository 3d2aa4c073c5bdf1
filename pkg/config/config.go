// Package config defines core configuration types for linegrep.
// These types are pure data structures; loading and layering live in internal/configloader.
package config

// OutputFormat specifies how search results are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// String returns the format name.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for a linegrep run.
type Config struct {
	// IgnoreCase compares the query and lines under case folding.
	IgnoreCase bool `yaml:"ignore_case"`

	// Color controls colorized output ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format"`

	// NoContent suppresses printing the full file content before the matches.
	NoContent bool `yaml:"no_content"`

	// LineNumbers prefixes each matching line with its line number.
	LineNumbers bool `yaml:"line_numbers"`

	// Invocation-level options (not persisted to config files).

	// FilePath is the file to search.
	FilePath string `yaml:"-"`

	// Query is the substring to search for.
	Query string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		IgnoreCase:  false,
		Color:       ColorAuto,
		Format:      FormatText,
		NoContent:   false,
		LineNumbers: false,
	}
}
