package configloader

import "github.com/yaklabco/linegrep/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Strings: override overwrites base if non-empty
//   - Booleans: override can only switch a flag on, since false is the zero value
//   - FilePath and Query: override overwrites base if non-empty
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	if override.IgnoreCase {
		result.IgnoreCase = true
	}
	if override.NoContent {
		result.NoContent = true
	}
	if override.LineNumbers {
		result.LineNumbers = true
	}

	if override.FilePath != "" {
		result.FilePath = override.FilePath
	}
	if override.Query != "" {
		result.Query = override.Query
	}

	return &result
}
