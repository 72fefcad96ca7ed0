package fsutil

import (
	"io"
	"os"
)

// writeCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeCloser interface {
	io.Writer
	Close() error
}

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	// Internal syscall wrappers for testability
	openFile  func(name string, flag int, perm os.FileMode) (writeCloser, error)
	mkdirAll  func(path string, perm os.FileMode) error
	removeAll func(path string) error
	remove    func(name string) error
	rename    func(oldpath, newpath string) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		openFile: func(name string, flag int, perm os.FileMode) (writeCloser, error) {
			return os.OpenFile(name, flag, perm)
		},
		mkdirAll:  os.MkdirAll,
		removeAll: os.RemoveAll,
		remove:    os.Remove,
		rename:    os.Rename,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (r *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadFile reads the whole file at path.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// UserHomeDir returns the current user's home directory.
func (r *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ListDir lists the immediate children of a directory in the order the OS returns them.
// Entry info is not followed through symlinks; callers that need the target type Stat it.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Readdir keeps directory order, unlike os.ReadDir which sorts by name.
	infos, err := f.Readdir(-1)
	if err != nil {
		return nil, &ListDirError{Path: path, Cause: err}
	}
	return infos, nil
}

// MakeDir creates path and any missing parents.
func (r *OSFileSystem) MakeDir(path string, perm os.FileMode) error {
	return r.mkdirAll(path, perm)
}

// RemoveTree removes path and everything below it.
func (r *OSFileSystem) RemoveTree(path string) error {
	return r.removeAll(path)
}

// Remove removes a single file or empty directory.
func (r *OSFileSystem) Remove(path string) error {
	return r.remove(path)
}

// Rename moves oldPath to newPath.
func (r *OSFileSystem) Rename(oldPath, newPath string) error {
	return r.rename(oldPath, newPath)
}

// CreateEmpty opens path for writing and closes it without writing anything.
// An existing file is truncated unless exclusive is set, in which case the call fails
// with an error satisfying errors.Is(err, fs.ErrExist).
func (r *OSFileSystem) CreateEmpty(path string, perm os.FileMode, exclusive bool) error {
	flag := os.O_WRONLY | os.O_CREATE
	if exclusive {
		flag |= os.O_EXCL
	} else {
		flag |= os.O_TRUNC
	}

	f, err := r.openFile(path, flag, perm)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return &CloseError{Path: path, Cause: err}
	}
	return nil
}
