package directory

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/fman/internal/tool/fsutil"
)

// -- Sentinels --

var (
	ErrNotFound         = errors.New("directory does not exist")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
)

// BuildError is returned when a snapshot cannot be built for a root.
// It matches the sentinel for its Reason with errors.Is.
type BuildError struct {
	Root   string
	Reason fsutil.FailureReason
	Cause  error
}

func (e *BuildError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("cannot list %s: %s", e.Root, e.Reason.Description())
	}
	return fmt.Sprintf("cannot list %s: %s: %v", e.Root, e.Reason.Description(), e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

func (e *BuildError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Reason == fsutil.ReasonNotFound
	case ErrPermissionDenied:
		return e.Reason == fsutil.ReasonPermissionDenied
	case ErrNotADirectory:
		return e.Reason == fsutil.ReasonNotADirectory
	}
	return false
}

func (e *BuildError) IOError() bool {
	return true
}
