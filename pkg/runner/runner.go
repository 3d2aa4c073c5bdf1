// Package runner reads a file and runs the search and highlight stages over it.
package runner

import (
	"context"

	"github.com/yaklabco/linegrep/internal/logging"
	"github.com/yaklabco/linegrep/pkg/config"
	"github.com/yaklabco/linegrep/pkg/fsutil"
	"github.com/yaklabco/linegrep/pkg/highlight"
	"github.com/yaklabco/linegrep/pkg/langdetect"
	"github.com/yaklabco/linegrep/pkg/search"
)

// ReadFunc reads a whole file.
type ReadFunc func(ctx context.Context, path string) ([]byte, error)

// Runner runs the read, search and highlight pipeline for one file.
type Runner struct {
	// Read loads file content. Defaults to fsutil.ReadFile.
	Read ReadFunc
}

// New creates a Runner that reads from the local file system.
func New() *Runner {
	return &Runner{Read: readFile}
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	return content, err
}

// Run reads cfg.FilePath in full, then finds and highlights every line that
// contains cfg.Query. A read failure is returned as *IOError and is not retried.
// Search and highlighting cannot fail.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	logger := logging.FromContext(ctx)

	read := r.Read
	if read == nil {
		read = readFile
	}

	raw, err := read(ctx, cfg.FilePath)
	if err != nil {
		return nil, &IOError{Path: cfg.FilePath, Err: err}
	}
	content := string(raw)

	mode := search.ModeFor(cfg.IgnoreCase)
	result := &Result{
		Path:     cfg.FilePath,
		Content:  content,
		Language: langdetect.Detect(cfg.FilePath, raw),
		Query:    cfg.Query,
		Mode:     mode,
	}
	result.Stats.Bytes = len(raw)

	for range search.Lines(content) {
		result.Stats.Lines++
	}

	for _, match := range search.Find(mode, cfg.Query, content) {
		line := LineResult{
			Match: match,
			Spans: highlight.Collect(match.Text, cfg.Query, mode),
		}
		result.Matches = append(result.Matches, line)
		result.Stats.Occurrences += line.Occurrences()
	}
	result.Stats.Matches = len(result.Matches)

	logger.Debug("search complete",
		logging.FieldPath, result.Path,
		logging.FieldLanguage, result.Language,
		logging.FieldBytes, result.Stats.Bytes,
		logging.FieldLines, result.Stats.Lines,
		logging.FieldMatches, result.Stats.Matches,
		logging.FieldOccurrences, result.Stats.Occurrences,
	)

	return result, nil
}
