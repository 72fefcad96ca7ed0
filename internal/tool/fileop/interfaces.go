package fileop

import (
	"os"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"go.uber.org/zap"
)

// fileSystem defines the filesystem operations the six commands need.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	MakeDir(path string, perm os.FileMode) error
	RemoveTree(path string) error
	Remove(path string) error
	Rename(oldPath, newPath string) error
	CreateEmpty(path string, perm os.FileMode, exclusive bool) error
}

// snapshotBuilder rebuilds the root listing after a successful mutation.
type snapshotBuilder interface {
	Build(root string) (directory.Snapshot, error)
}

// auditor records exactly one entry per execution.
type auditor interface {
	Info(message string, fields ...zap.Field) audit.Entry
	Error(message string, fields ...zap.Field) audit.Entry
}

// operationRecorder counts executed operations.
type operationRecorder interface {
	RecordOperation(command, result string)
}
