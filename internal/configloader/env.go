package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/linegrep/pkg/config"
)

// envVarPrefix is the prefix for all linegrep environment variables.
const envVarPrefix = "LINEGREP_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"IGNORE_CASE":  {field: "ignore_case", typ: envTypeBool},
	"COLOR":        {field: "color", typ: envTypeString},
	"FORMAT":       {field: "format", typ: envTypeString},
	"NO_CONTENT":   {field: "no_content", typ: envTypeBool},
	"LINE_NUMBERS": {field: "line_numbers", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with LINEGREP_ (e.g., LINEGREP_IGNORE_CASE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &config.ConfigurationError{
				Field:   envVar,
				Message: fmt.Sprintf("invalid boolean %q (expected true/false/1/0)", value),
			}
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "color":
		cfg.Color = config.ColorMode(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "ignore_case":
		cfg.IgnoreCase = value
	case "no_content":
		cfg.NoContent = value
	case "line_numbers":
		cfg.LineNumbers = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		config.IgnoreCaseEnv:    "Set to 1 to search case-insensitively",
		"LINEGREP_IGNORE_CASE":  "Search case-insensitively: true or false",
		"LINEGREP_COLOR":        "Colorize output: auto, always, or never",
		"LINEGREP_FORMAT":       "Output format: text or json",
		"LINEGREP_NO_CONTENT":   "Skip printing the file content: true or false",
		"LINEGREP_LINE_NUMBERS": "Prefix matches with line numbers: true or false",
	}
}
