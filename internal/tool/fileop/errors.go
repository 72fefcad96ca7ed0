package fileop

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"github.com/Cyclone1070/fman/internal/workflow"
)

// -- Sentinels --

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotADirectory      = errors.New("not a directory")
	ErrIsADirectory       = errors.New("is a directory")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrInputCountMismatch = errors.New("input count does not match command")
)

// FilesystemError is the failure payload of an Outcome. It matches the sentinel for its
// Reason with errors.Is and unwraps to the OS error.
type FilesystemError struct {
	Reason fsutil.FailureReason
	Op     workflow.CommandKind
	Path   string
	Cause  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", verb(e.Op), e.Path, e.Reason.Description(), e.Cause)
}

func (e *FilesystemError) Unwrap() error {
	return e.Cause
}

func (e *FilesystemError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Reason == fsutil.ReasonNotFound
	case ErrAlreadyExists:
		return e.Reason == fsutil.ReasonAlreadyExists
	case ErrPermissionDenied:
		return e.Reason == fsutil.ReasonPermissionDenied
	case ErrNotADirectory:
		return e.Reason == fsutil.ReasonNotADirectory
	case ErrIsADirectory:
		return e.Reason == fsutil.ReasonIsADirectory
	}
	return false
}

func (e *FilesystemError) IOError() bool {
	return true
}

func newFilesystemError(op workflow.CommandKind, path string, cause error) *FilesystemError {
	return &FilesystemError{
		Reason: fsutil.Classify(cause),
		Op:     op,
		Path:   path,
		Cause:  cause,
	}
}
