package directory

import (
	"os"
	"time"
)

// fileSystem defines the filesystem operations needed to build a snapshot.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// IgnoreMatcher reports whether a root-relative path is matched by ignore rules.
type IgnoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// IgnoreLoader loads the ignore rules for a root.
type IgnoreLoader func(root string) (IgnoreMatcher, error)

// snapshotRecorder receives build statistics.
type snapshotRecorder interface {
	RecordSnapshot(entries int, took time.Duration)
}
