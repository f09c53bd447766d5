package simplefin

import (
	"errors"
	"fmt"
)

var (
	// ErrNotADate marks a timestamp value that cannot be reduced to a
	// calendar date.
	ErrNotADate = errors.New("not a date")

	// ErrNotSimpleFIN marks a file that does not decode as a SimpleFIN
	// account export.
	ErrNotSimpleFIN = errors.New("not a SimpleFIN account file")
)

// ImportError carries context for a file-level import failure.
type ImportError struct {
	Path  string
	Op    string
	Cause error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Cause)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
