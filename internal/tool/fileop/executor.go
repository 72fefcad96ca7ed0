package fileop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"github.com/Cyclone1070/fman/internal/workflow"
	"go.uber.org/zap"
)

const resultSuccess = "success"

// Options controls how new entries are created.
type Options struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
	// ExclusiveCreate makes CreateFile fail on an existing target instead of truncating it.
	ExclusiveCreate bool
}

// DefaultOptions matches the permissions used by mkdir(1) and touch(1).
func DefaultOptions() Options {
	return Options{DirPerm: 0o755, FilePerm: 0o644}
}

// Outcome is the result of one execution.
type Outcome struct {
	Command workflow.CommandKind
	// Paths are the resolved absolute paths: the target, or source then destination.
	Paths []string
	// Snapshot is the rebuilt listing. Only set when Err and SnapshotErr are nil.
	Snapshot directory.Snapshot
	// Entry is the audit entry written for this execution.
	Entry audit.Entry
	// Err is nil on success, otherwise usually a *FilesystemError.
	Err error
	// SnapshotErr is set when the operation succeeded but the root could not be relisted.
	SnapshotErr error
}

// OK reports whether the filesystem operation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// operation is one row of the dispatch table.
type operation struct {
	run     func(e *Executor, kind workflow.CommandKind, paths []string) error
	success func(paths []string) string
}

var operations = map[workflow.CommandKind]operation{
	workflow.CreateFolder: {
		run:     (*Executor).createFolder,
		success: func(p []string) string { return "Folder created: " + p[0] },
	},
	workflow.DeleteFolder: {
		run:     (*Executor).deleteFolder,
		success: func(p []string) string { return "Folder deleted: " + p[0] },
	},
	workflow.RenameFolder: {
		run:     (*Executor).rename,
		success: func(p []string) string { return fmt.Sprintf("Folder renamed from %s to %s", p[0], p[1]) },
	},
	workflow.CreateFile: {
		run:     (*Executor).createFile,
		success: func(p []string) string { return "File created: " + p[0] },
	},
	workflow.DeleteFile: {
		run:     (*Executor).deleteFile,
		success: func(p []string) string { return "File deleted: " + p[0] },
	},
	workflow.RenameFile: {
		run:     (*Executor).rename,
		success: func(p []string) string { return fmt.Sprintf("File renamed from %s to %s", p[0], p[1]) },
	},
}

// Executor performs the six mutating commands against the OS.
type Executor struct {
	fs        fileSystem
	snapshots snapshotBuilder
	audit     auditor
	recorder  operationRecorder
	opts      Options
	logger    *zap.Logger
}

// NewExecutor creates an Executor with injected dependencies. recorder and logger may be nil.
func NewExecutor(
	fs fileSystem,
	snapshots snapshotBuilder,
	auditLog auditor,
	recorder operationRecorder,
	opts Options,
	logger *zap.Logger,
) *Executor {
	if fs == nil || snapshots == nil || auditLog == nil {
		panic("fs, snapshots and audit log are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		fs:        fs,
		snapshots: snapshots,
		audit:     auditLog,
		recorder:  recorder,
		opts:      opts,
		logger:    logger,
	}
}

// Execute resolves inputs against root and performs exactly one OS-level action for kind.
// Every call writes exactly one audit entry. On success the root is relisted; on failure
// no snapshot is built. Names are joined to root as given: ".." components and absolute
// names are not rejected.
//
// Note: ctx is accepted for API consistency but not used - the OS call runs to completion.
func (e *Executor) Execute(ctx context.Context, kind workflow.CommandKind, inputs []string, root string) Outcome {
	op, ok := operations[kind]
	if !ok {
		return e.fail(kind, nil, fmt.Errorf("%w: %s", ErrUnsupportedCommand, kind))
	}
	if len(inputs) != kind.Arity() {
		return e.fail(kind, nil, fmt.Errorf("%w: %s takes %d, got %d", ErrInputCountMismatch, kind, kind.Arity(), len(inputs)))
	}

	paths := make([]string, len(inputs))
	for i, name := range inputs {
		paths[i] = filepath.Join(root, name)
	}

	if err := op.run(e, kind, paths); err != nil {
		return e.fail(kind, paths, err)
	}

	entry := e.audit.Info(op.success(paths),
		zap.String("command", kind.String()),
		zap.Strings("paths", paths),
	)
	e.record(kind, resultSuccess)

	out := Outcome{Command: kind, Paths: paths, Entry: entry}
	snap, err := e.snapshots.Build(root)
	if err != nil {
		e.logger.Warn("relisting root after operation failed", zap.String("root", root), zap.Error(err))
		out.SnapshotErr = err
		return out
	}
	out.Snapshot = snap
	return out
}

func (e *Executor) fail(kind workflow.CommandKind, paths []string, err error) Outcome {
	reason := fsutil.Classify(err)
	message := fmt.Sprintf("Failed to %s (%s): %v", verb(kind), reason.Description(), err)
	var fsErr *FilesystemError
	if errors.As(err, &fsErr) {
		message = fmt.Sprintf("Failed to %s (%s): %v", verb(kind), fsErr.Reason.Description(), fsErr.Cause)
		reason = fsErr.Reason
	}

	entry := e.audit.Error(message,
		zap.String("command", kind.String()),
		zap.Strings("paths", paths),
		zap.String("reason", string(reason)),
	)
	e.record(kind, string(reason))

	return Outcome{Command: kind, Paths: paths, Entry: entry, Err: err}
}

func (e *Executor) record(kind workflow.CommandKind, result string) {
	if e.recorder != nil {
		e.recorder.RecordOperation(kind.String(), result)
	}
}

// -- Handlers --

func (e *Executor) createFolder(kind workflow.CommandKind, paths []string) error {
	target := paths[0]
	if err := e.mustBeAbsent(kind, "mkdir", target); err != nil {
		return err
	}
	if err := e.fs.MakeDir(target, e.opts.DirPerm); err != nil {
		return newFilesystemError(kind, target, err)
	}
	return nil
}

func (e *Executor) deleteFolder(kind workflow.CommandKind, paths []string) error {
	target := paths[0]
	isDir, err := e.isDir(target)
	if err != nil {
		return newFilesystemError(kind, target, err)
	}
	if !isDir {
		return newFilesystemError(kind, target, &fs.PathError{Op: "rmdir", Path: target, Err: syscall.ENOTDIR})
	}
	if err := e.fs.RemoveTree(target); err != nil {
		return newFilesystemError(kind, target, err)
	}
	return nil
}

func (e *Executor) createFile(kind workflow.CommandKind, paths []string) error {
	target := paths[0]
	if err := e.fs.CreateEmpty(target, e.opts.FilePerm, e.opts.ExclusiveCreate); err != nil {
		return newFilesystemError(kind, target, err)
	}
	return nil
}

func (e *Executor) deleteFile(kind workflow.CommandKind, paths []string) error {
	target := paths[0]
	isDir, err := e.isDir(target)
	if err != nil {
		return newFilesystemError(kind, target, err)
	}
	if isDir {
		return newFilesystemError(kind, target, &fs.PathError{Op: "remove", Path: target, Err: syscall.EISDIR})
	}
	if err := e.fs.Remove(target); err != nil {
		return newFilesystemError(kind, target, err)
	}
	return nil
}

// rename serves both folder and file renames. The source kind is not checked.
func (e *Executor) rename(kind workflow.CommandKind, paths []string) error {
	source, dest := paths[0], paths[1]
	if _, err := e.fs.Lstat(source); err != nil {
		return newFilesystemError(kind, source, err)
	}
	if err := e.mustBeAbsent(kind, "rename", dest); err != nil {
		return err
	}
	if err := e.fs.Rename(source, dest); err != nil {
		return newFilesystemError(kind, source, err)
	}
	return nil
}

// mustBeAbsent fails with AlreadyExists when path exists, including dangling symlinks.
func (e *Executor) mustBeAbsent(kind workflow.CommandKind, osOp, path string) error {
	_, err := e.fs.Lstat(path)
	if err == nil {
		return newFilesystemError(kind, path, &fs.PathError{Op: osOp, Path: path, Err: fs.ErrExist})
	}
	if fsutil.Classify(err) != fsutil.ReasonNotFound {
		return newFilesystemError(kind, path, err)
	}
	return nil
}

// isDir follows symlinks like the snapshot does, falling back to Lstat for dangling links.
func (e *Executor) isDir(path string) (bool, error) {
	info, err := e.fs.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	info, lerr := e.fs.Lstat(path)
	if lerr != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func verb(kind workflow.CommandKind) string {
	switch kind {
	case workflow.CreateFolder:
		return "create folder"
	case workflow.DeleteFolder:
		return "delete folder"
	case workflow.RenameFolder:
		return "rename folder"
	case workflow.CreateFile:
		return "create file"
	case workflow.DeleteFile:
		return "delete file"
	case workflow.RenameFile:
		return "rename file"
	}
	return "run " + kind.String()
}
