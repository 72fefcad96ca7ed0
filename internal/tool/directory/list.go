package directory

import (
	"github.com/Cyclone1070/fman/internal/clock"
	"github.com/Cyclone1070/fman/internal/tool/fsutil"
	"go.uber.org/zap"
)

// Builder lists a root's immediate children into a Snapshot.
type Builder struct {
	fs       fileSystem
	ignore   IgnoreLoader
	recorder snapshotRecorder
	clock    clock.Clock
	logger   *zap.Logger
}

// NewBuilder creates a Builder. ignore, recorder and logger may be nil.
func NewBuilder(fs fileSystem, ignore IgnoreLoader, recorder snapshotRecorder, logger *zap.Logger) *Builder {
	if fs == nil {
		panic("fs is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		fs:       fs,
		ignore:   ignore,
		recorder: recorder,
		clock:    clock.RealClock{},
		logger:   logger,
	}
}

// Build lists root. An empty root yields the empty snapshot.
// Each child is classified with Stat, which follows symlinks; when Stat fails (a dangling
// link, for example) the listing's own info is used. Nothing is filtered or sorted.
func (b *Builder) Build(root string) (Snapshot, error) {
	if root == "" {
		return Empty(), nil
	}
	start := b.clock.Now()

	info, err := b.fs.Stat(root)
	if err != nil {
		return Snapshot{}, &BuildError{Root: root, Reason: fsutil.Classify(err), Cause: err}
	}
	if !info.IsDir() {
		return Snapshot{}, &BuildError{Root: root, Reason: fsutil.ReasonNotADirectory}
	}

	infos, err := b.fs.ListDir(root)
	if err != nil {
		return Snapshot{}, &BuildError{Root: root, Reason: fsutil.Classify(err), Cause: err}
	}

	matcher := b.loadMatcher(root)

	entries := make([]Entry, 0, len(infos))
	for _, child := range infos {
		full := entryPath(root, child.Name())

		isDir := child.IsDir()
		if target, err := b.fs.Stat(full); err == nil {
			isDir = target.IsDir()
		}

		entry := Entry{Name: child.Name(), FullPath: full, Kind: KindFile}
		if isDir {
			entry.Kind = KindDirectory
		}
		if matcher != nil {
			entry.Ignored = matcher.ShouldIgnore(child.Name(), isDir)
		}
		entries = append(entries, entry)
	}

	took := b.clock.Now().Sub(start)
	if b.recorder != nil {
		b.recorder.RecordSnapshot(len(entries), took)
	}
	b.logger.Debug("snapshot built",
		zap.String("root", root),
		zap.Int("entries", len(entries)),
		zap.Duration("took", took),
	)

	return Snapshot{root: root, entries: entries}, nil
}

// loadMatcher returns nil when annotation is off or the rules cannot be read.
// An unreadable .gitignore never fails the listing.
func (b *Builder) loadMatcher(root string) IgnoreMatcher {
	if b.ignore == nil {
		return nil
	}
	m, err := b.ignore(root)
	if err != nil {
		b.logger.Warn("ignore rules unavailable", zap.String("root", root), zap.Error(err))
		return nil
	}
	return m
}
