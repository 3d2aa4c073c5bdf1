package cli

import (
	"errors"

	"github.com/yaklabco/linegrep/pkg/config"
	"github.com/yaklabco/linegrep/pkg/runner"
)

// Exit codes for linegrep.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates missing arguments or invalid configuration.
	ExitInvalidUsage = 64

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the input file could not be read.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by the root command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitInvalidUsage
	}

	var ioErr *runner.IOError
	if errors.As(err, &ioErr) {
		return ExitIOError
	}

	return ExitInternalError
}
