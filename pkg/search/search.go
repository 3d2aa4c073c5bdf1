// Package search finds the lines of a text that contain a query substring.
package search

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Mode selects how a query is compared against line text.
type Mode int

const (
	// ModeExact matches byte-for-byte with no normalization.
	ModeExact Mode = iota

	// ModeIgnoreCase matches under Unicode simple case folding.
	ModeIgnoreCase
)

// ModeFor returns ModeIgnoreCase when ignoreCase is set, ModeExact otherwise.
func ModeFor(ignoreCase bool) Mode {
	if ignoreCase {
		return ModeIgnoreCase
	}
	return ModeExact
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIgnoreCase:
		return "ignore-case"
	default:
		return "exact"
	}
}

// Index returns the byte offset of the first occurrence of substr in s,
// or -1 if substr is not present.
//
// In ModeIgnoreCase the comparison window is always exactly len(substr) bytes
// of s, starting on a rune boundary. Offsets therefore always refer to s
// itself and a match always spans len(substr) bytes. Characters whose folded
// forms have a different encoded width than the query never match.
func (m Mode) Index(s, substr string) int {
	if m != ModeIgnoreCase {
		return strings.Index(s, substr)
	}
	return foldIndex(s, substr)
}

// Contains reports whether substr is within s.
func (m Mode) Contains(s, substr string) bool {
	return m.Index(s, substr) >= 0
}

func foldIndex(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	for i := 0; i+n <= len(s); {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1
}

// Match is a line of content that contains the query.
type Match struct {
	// Number is the 1-based line number within the content.
	Number int

	// Text is the original line, without its line terminator.
	Text string
}

// Lines yields each line of content with its 1-based line number.
// Lines are split on '\n' and a trailing '\r' is dropped. A trailing newline
// does not produce a final empty line, and empty content yields nothing.
func Lines(content string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		number := 0
		for line := range strings.Lines(content) {
			number++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(number, line) {
				return
			}
		}
	}
}

// Find returns every line of content containing query, in original order.
func Find(mode Mode, query, content string) []Match {
	var matches []Match
	for number, line := range Lines(content) {
		if mode.Contains(line, query) {
			matches = append(matches, Match{Number: number, Text: line})
		}
	}
	return matches
}

// Search returns the lines of content that contain query, compared exactly.
func Search(query, content string) []string {
	return texts(Find(ModeExact, query, content))
}

// SearchCaseInsensitive returns the lines of content that contain query
// regardless of case. The returned lines keep their original casing.
func SearchCaseInsensitive(query, content string) []string {
	return texts(Find(ModeIgnoreCase, query, content))
}

func texts(matches []Match) []string {
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, match.Text)
	}
	return result
}
