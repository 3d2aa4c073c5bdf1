package config

import "fmt"

// IgnoreCaseEnv is the environment toggle read once by Build.
// Only the value "1" enables case-insensitive search.
const IgnoreCaseEnv = "IGNORE_CASE"

// ConfigurationError reports a missing or invalid invocation argument.
// It is always detected before any file is accessed.
type ConfigurationError struct {
	// Field names the offending argument or setting.
	Field string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Build creates a Config from positional arguments and an environment lookup.
// args[0] is the file path and args[1] the query. The environment is consulted
// once here so the rest of the program never reads process-wide state.
func Build(args []string, getenv func(string) string) (*Config, error) {
	cfg := NewConfig()

	if len(args) < 1 {
		return nil, &ConfigurationError{Field: "file", Message: "didn't get a file path"}
	}
	if len(args) < 2 {
		return nil, &ConfigurationError{Field: "query", Message: "didn't get a query"}
	}
	if len(args) > 2 {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("unexpected argument %q; expected <file> <query>", args[2]),
		}
	}
	if args[0] == "" {
		return nil, &ConfigurationError{Field: "file", Message: "file path is empty"}
	}

	cfg.FilePath = args[0]
	cfg.Query = args[1]

	if getenv != nil {
		cfg.IgnoreCase = getenv(IgnoreCaseEnv) == "1"
	}

	return cfg, nil
}
