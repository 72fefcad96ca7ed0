// Package engine owns the root selection, the armed-command workflow, the current
// directory snapshot and the audit log, and exposes them to a rendering layer.
package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"github.com/Cyclone1070/fman/internal/workflow"
	"go.uber.org/zap"
)

// Engine serializes its public calls, so a UI may run Submit on a worker goroutine while
// polling CurrentSnapshot. It does not queue or cancel operations.
type Engine struct {
	mu sync.Mutex

	root     string
	snapshot directory.Snapshot
	workflow *workflow.Workflow

	builder  snapshotBuilder
	executor commandExecutor
	audit    auditLog
	recorder validationRecorder
	logger   *zap.Logger
}

// New creates an Engine with no root selected. recorder and logger may be nil.
func New(builder snapshotBuilder, executor commandExecutor, auditLog auditLog, recorder validationRecorder, logger *zap.Logger) *Engine {
	if builder == nil || executor == nil || auditLog == nil {
		panic("builder, executor and audit log are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		snapshot: directory.Empty(),
		workflow: workflow.New(),
		builder:  builder,
		executor: executor,
		audit:    auditLog,
		recorder: recorder,
		logger:   logger,
	}
}

// ChooseRoot makes path the root, relists it and returns the workflow to Idle.
// On failure the previous root, snapshot and workflow state are kept.
func (e *Engine) ChooseRoot(path string) (directory.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(path) == "" {
		return directory.Snapshot{}, &RootError{Path: path, Reason: fsutil.ReasonNotFound, Cause: ErrEmptyRoot}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return directory.Snapshot{}, &RootError{Path: path, Reason: fsutil.ReasonUnknown, Cause: err}
	}

	snap, err := e.builder.Build(abs)
	if err != nil {
		rootErr := &RootError{Path: abs, Reason: fsutil.ReasonUnknown, Cause: err}
		var buildErr *directory.BuildError
		if errors.As(err, &buildErr) {
			rootErr.Reason = buildErr.Reason
		}
		e.audit.Error(fmt.Sprintf("Failed to change directory to %s: %v", abs, err),
			zap.String("root", abs),
			zap.String("reason", string(rootErr.Reason)),
		)
		return directory.Snapshot{}, rootErr
	}

	e.root = abs
	e.snapshot = snap
	e.workflow.Reset()
	e.audit.Info("Changed directory to "+abs, zap.String("root", abs))
	return snap, nil
}

// ClearRoot unsets the root, returns the workflow to Idle and yields the empty snapshot.
func (e *Engine) ClearRoot() directory.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.root = ""
	e.snapshot = directory.Empty()
	e.workflow.Reset()
	e.audit.Info("Reset directory selection.")
	return e.snapshot
}

// Arm selects kind as the single armed command. It fails with ErrNoRoot when no root is set.
func (e *Engine) Arm(kind workflow.CommandKind) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.root == "" {
		return ErrNoRoot
	}
	return e.workflow.Arm(kind)
}

// SetDraft records partial input for the armed command.
func (e *Engine) SetDraft(index int, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workflow.SetDraft(index, value)
}

// Draft returns the partial input held for the armed command.
func (e *Engine) Draft() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workflow.Draft()
}

// Submit validates inputs against the armed command and executes it under the current root.
//
// A *workflow.ValidationError leaves the command armed and writes no audit entry.
// Otherwise the workflow returns to Idle whatever the outcome, and the returned error is
// the outcome's error. ctx is only checked before the hand-off to the executor.
func (e *Engine) Submit(ctx context.Context, inputs ...string) (fileop.Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.root == "" {
		return fileop.Outcome{}, ErrNoRoot
	}
	if err := ctx.Err(); err != nil {
		return fileop.Outcome{}, err
	}

	root := e.root
	var out fileop.Outcome
	err := e.workflow.Submit(inputs, func(kind workflow.CommandKind, args []string) {
		out = e.executor.Execute(ctx, kind, args, root)
	})
	if err != nil {
		var vErr *workflow.ValidationError
		if errors.As(err, &vErr) && e.recorder != nil {
			e.recorder.RecordValidationFailure(vErr.Command.String())
		}
		return fileop.Outcome{}, err
	}

	switch {
	case out.Err != nil:
	case out.SnapshotErr != nil:
		// The old listing no longer describes the directory.
		e.snapshot = directory.NewSnapshot(root, nil)
		e.logger.Warn("failed to relist root", zap.String("root", root), zap.Error(out.SnapshotErr))
	default:
		e.snapshot = out.Snapshot
	}
	return out, out.Err
}

// Reset cancels the armed command. Cancelling is audited; Reset while Idle is a no-op.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, armed := e.workflow.State().Armed(); !armed {
		return
	}
	e.workflow.Reset()
	e.audit.Info("Reset command selection.")
}

// CurrentSnapshot returns the latest snapshot.
func (e *Engine) CurrentSnapshot() directory.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

// AuditLog returns every audit entry since the engine started, oldest first.
func (e *Engine) AuditLog() []audit.Entry {
	return e.audit.Entries()
}

// State returns the workflow state.
func (e *Engine) State() workflow.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.workflow.State()
}

// Root returns the selected root.
func (e *Engine) Root() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.root, e.root != ""
}
