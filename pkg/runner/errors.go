package runner

import "fmt"

// IOError reports that the input file could not be read.
// Err wraps one of the fsutil sentinel errors when the cause is known.
type IOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}
