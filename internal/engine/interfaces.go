package engine

import (
	"context"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/workflow"
	"go.uber.org/zap"
)

// snapshotBuilder lists a root.
type snapshotBuilder interface {
	Build(root string) (directory.Snapshot, error)
}

// commandExecutor performs one armed command.
type commandExecutor interface {
	Execute(ctx context.Context, kind workflow.CommandKind, inputs []string, root string) fileop.Outcome
}

// auditLog is the append-only record shared with the executor.
type auditLog interface {
	Info(message string, fields ...zap.Field) audit.Entry
	Error(message string, fields ...zap.Field) audit.Entry
	Entries() []audit.Entry
}

// validationRecorder counts submissions rejected before reaching the filesystem.
type validationRecorder interface {
	RecordValidationFailure(command string)
}
