// Package logging holds linegrep's diagnostic loggers. Search output goes to
// stdout through the reporters; everything logged here goes to stderr.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

//nolint:gochecknoglobals // Process-wide default logger.
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New returns a stderr logger at level. Unknown levels fall back to info;
// "warning" is accepted for "warn".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{})
	logger.SetLevel(parseLevel(level))
	return logger
}

// NewInteractive returns an info logger for user-facing commands such as init.
// Timestamps are added only when stderr is not a terminal.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: !term.IsTerminal(int(os.Stderr.Fd())),
		Level:           log.InfoLevel,
	})
}

func parseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	parsed, err := log.ParseLevel(level)
	if err != nil || parsed > log.ErrorLevel {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the logger used for command errors and --debug output.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel changes the level of the default logger. --debug sets "debug".
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
