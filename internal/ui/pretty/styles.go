// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/yaklabco/linegrep/pkg/config"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Section headers ("content:", "found:")
	Header lipgloss.Style

	// Search results
	Highlight  lipgloss.Style
	LineNumber lipgloss.Style

	// Status
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
// Styles carry their own renderer, so colors are emitted whenever
// colorEnabled is set, regardless of what stdout is attached to.
func NewStyles(colorEnabled bool) *Styles {
	renderer := lipgloss.NewRenderer(io.Discard)
	if !colorEnabled {
		renderer.SetColorProfile(termenv.Ascii)
		return newNoColorStyles(renderer)
	}
	renderer.SetColorProfile(termenv.ANSI256)
	return newColorStyles(renderer)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles(r *lipgloss.Renderer) *Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styles{
		Header: base.Foreground(lipgloss.Color("2")).Bold(true), // Green

		Highlight:  base.Foreground(lipgloss.Color("11")), // Bright yellow
		LineNumber: base.Foreground(lipgloss.Color("8")),

		Error:   base.Foreground(lipgloss.Color("9")).Bold(true),
		Warning: base.Foreground(lipgloss.Color("11")).Bold(true),
		Success: base.Foreground(lipgloss.Color("10")).Bold(true),

		Dim:  base.Foreground(lipgloss.Color("8")),
		Bold: base.Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles(r *lipgloss.Renderer) *Styles {
	plain := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Styles{
		Header:     plain,
		Highlight:  plain,
		LineNumber: plain,
		Error:      plain,
		Warning:    plain,
		Success:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
