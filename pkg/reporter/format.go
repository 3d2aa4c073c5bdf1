package reporter

import (
	"fmt"

	"github.com/yaklabco/linegrep/pkg/config"
)

// Format selects a reporter implementation. It shares its values with the
// configuration's output format.
type Format = config.OutputFormat

// Output formats supported by the reporter.
const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
)

// ParseFormat parses a format name. The empty string selects text output.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if format := Format(name); format.IsValid() {
		return format, nil
	}
	return "", &config.ConfigurationError{
		Field:   "format",
		Message: fmt.Sprintf("unknown format %q; valid formats: %s, %s", name, FormatText, FormatJSON),
	}
}
