package configloader

import (
	"fmt"

	"github.com/yaklabco/linegrep/pkg/config"
)

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []config.ConfigurationError

	// Warnings are non-fatal issues.
	Warnings []string
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, config.ConfigurationError{
			Field:   "color",
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, config.ConfigurationError{
			Field:   "format",
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if cfg.Format == config.FormatJSON && cfg.Color == config.ColorAlways {
		result.Warnings = append(result.Warnings, "color is ignored for json output")
	}

	return result
}
