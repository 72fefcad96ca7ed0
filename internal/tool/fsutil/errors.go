package fsutil

import (
	"fmt"
)

// ListDirError is returned when reading directory entries fails after the directory was opened.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to read entries of %s: %v", e.Path, e.Cause)
}

func (e *ListDirError) Unwrap() error {
	return e.Cause
}

func (e *ListDirError) IOError() bool {
	return true
}

// CloseError is returned when closing a freshly created file fails.
type CloseError struct {
	Path  string
	Cause error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("failed to close %s: %v", e.Path, e.Cause)
}

func (e *CloseError) Unwrap() error {
	return e.Cause
}

func (e *CloseError) IOError() bool {
	return true
}
