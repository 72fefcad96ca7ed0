package engine

import (
	"github.com/Cyclone1070/fman/internal/audit"
	"github.com/Cyclone1070/fman/internal/clock"
	"github.com/Cyclone1070/fman/internal/config"
	"github.com/Cyclone1070/fman/internal/metrics"
	"github.com/Cyclone1070/fman/internal/tool/directory"
	"github.com/Cyclone1070/fman/internal/tool/fileop"
	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"go.uber.org/zap"
)

// NewFromConfig wires an Engine on the real filesystem. m and logger may be nil.
func NewFromConfig(cfg *config.Config, m *metrics.Metrics, c clock.Clock, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	osfs := fsutil.NewOSFileSystem()

	var ignore directory.IgnoreLoader
	if cfg.Engine.AnnotateIgnored {
		ignore = directory.GitignoreLoader(osfs)
	}

	auditLog := audit.NewLog(c, logger.Named("audit"))
	opts := fileop.Options{
		DirPerm:         cfg.Engine.DirMode(),
		FilePerm:        cfg.Engine.FileMode(),
		ExclusiveCreate: cfg.Engine.ExclusiveCreate,
	}

	// A nil *metrics.Metrics must not become a non-nil interface value.
	if m == nil {
		builder := directory.NewBuilder(osfs, ignore, nil, logger)
		exec := fileop.NewExecutor(osfs, builder, auditLog, nil, opts, logger)
		return New(builder, exec, auditLog, nil, logger)
	}
	builder := directory.NewBuilder(osfs, ignore, m, logger)
	exec := fileop.NewExecutor(osfs, builder, auditLog, m, opts, logger)
	return New(builder, exec, auditLog, m, logger)
}
