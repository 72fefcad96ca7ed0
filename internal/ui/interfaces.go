package ui

import (
	"context"

	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/workflow"
)

// Engine is the boundary the UI drives. The UI only pulls state after each call.
type Engine interface {
	ChooseRoot(path string) (directory.Snapshot, error)
	ClearRoot() directory.Snapshot
	Arm(kind workflow.CommandKind) error
	SetDraft(index int, value string) error
	Submit(ctx context.Context, inputs ...string) (fileop.Outcome, error)
	Reset()
	CurrentSnapshot() directory.Snapshot
	AuditLog() []audit.Entry
	State() workflow.State
	Root() (string, bool)
}
