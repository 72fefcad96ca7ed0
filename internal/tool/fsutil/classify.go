package fsutil

import (
	"errors"
	"io/fs"
	"syscall"
)

// FailureReason is the coarse category of a failed filesystem call.
type FailureReason string

const (
	ReasonNotFound         FailureReason = "not_found"
	ReasonAlreadyExists    FailureReason = "already_exists"
	ReasonPermissionDenied FailureReason = "permission_denied"
	ReasonNotADirectory    FailureReason = "not_a_directory"
	ReasonIsADirectory     FailureReason = "is_a_directory"
	ReasonUnknown          FailureReason = "unknown"
)

// Description is the human readable form used in messages.
func (r FailureReason) Description() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonAlreadyExists:
		return "already exists"
	case ReasonPermissionDenied:
		return "permission denied"
	case ReasonNotADirectory:
		return "not a directory"
	case ReasonIsADirectory:
		return "is a directory"
	default:
		return "unexpected error"
	}
}

// Classify maps an OS error onto a FailureReason. ENOTDIR and EISDIR are checked before
// the fs sentinels because some platforms also report them as not-exist.
func Classify(err error) FailureReason {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, syscall.ENOTDIR):
		return ReasonNotADirectory
	case errors.Is(err, syscall.EISDIR):
		return ReasonIsADirectory
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrExist), errors.Is(err, syscall.ENOTEMPTY):
		return ReasonAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	default:
		return ReasonUnknown
	}
}
