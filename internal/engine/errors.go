package engine

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"github.com/Cyclone1070/fman/internal/workflow"
)

// -- Sentinels --

var (
	ErrNoRoot    = errors.New("no directory selected")
	ErrEmptyRoot = errors.New("directory path is required")
	ErrNotArmed  = workflow.ErrNotArmed
)

// RootError is returned by ChooseRoot when the path cannot become the root.
// The previous root selection is kept.
type RootError struct {
	Path   string
	Reason fsutil.FailureReason
	Cause  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot use %q as root: %v", e.Path, e.Cause)
}

func (e *RootError) Unwrap() error {
	return e.Cause
}

func (e *RootError) InvalidInput() bool {
	return true
}
