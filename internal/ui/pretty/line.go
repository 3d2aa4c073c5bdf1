package pretty

import (
	"fmt"
	"iter"

	"github.com/yaklabco/linegrep/pkg/highlight"
)

// FormatSectionHeader returns a styled section title such as "content:".
func (s *Styles) FormatSectionHeader(title string) string {
	return s.Header.Render(title + ":")
}

// FormatMatchLine renders one matching line. Highlighted spans are styled;
// plain spans are written unchanged. A positive number is shown as a prefix.
func (s *Styles) FormatMatchLine(number int, line string, spans iter.Seq[highlight.Span]) string {
	rendered := highlight.RenderSpans(line, spans, s.renderOccurrence)
	if number <= 0 {
		return rendered
	}
	return s.LineNumber.Render(fmt.Sprintf("%d:", number)) + rendered
}

func (s *Styles) renderOccurrence(text string) string {
	return s.Highlight.Render(text)
}
