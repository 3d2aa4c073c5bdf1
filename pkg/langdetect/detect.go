// Package langdetect guesses the language of a searched file.
// It uses go-enry so structured output can label the content it reports on.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is reported when no strategy is confident.
const langText = "text"

// Detect returns a lowercase language name for the file at path with the given content.
// Returns "text" if detection is ambiguous.
func Detect(path string, content []byte) string {
	name := filepath.Base(path)

	// Strategy 1: well-known file names (Dockerfile, Makefile, ...).
	if lang, safe := enry.GetLanguageByFilename(name); safe {
		return normalize(lang)
	}

	// Strategy 2: unambiguous extensions.
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return normalize(lang)
	}

	// Strategy 3: shebang line.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	return langText
}

// normalize converts go-enry language names to short lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
