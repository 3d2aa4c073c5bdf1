// Package fsutil reads input files for linegrep and classifies read failures.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates the content is binary or not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64
}

// ReadFile reads a whole text file and returns its content along with metadata.
// Errors do not repeat path; callers wrap them with it.
// Binary content and content that is not valid UTF-8 is rejected with
// ErrInvalidEncoding.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %w", ErrNotFound, cause(err))
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %w", ErrPermissionDenied, cause(err))
		}
		return nil, nil, fmt.Errorf("stat: %w", cause(err))
	}

	if stat.IsDir() {
		return nil, nil, ErrIsDirectory
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %w", ErrPermissionDenied, cause(err))
		}
		return nil, nil, cause(err)
	}

	if err := CheckText(content); err != nil {
		return nil, nil, err
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}

	return content, info, nil
}

// cause strips the path from an *fs.PathError. Callers report the path once.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// CheckText returns ErrInvalidEncoding if content does not look like UTF-8 text.
func CheckText(content []byte) error {
	if enry.IsBinary(content) {
		return fmt.Errorf("%w: binary content", ErrInvalidEncoding)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidEncoding)
	}
	return nil
}
