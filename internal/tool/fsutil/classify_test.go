package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureReason
	}{
		{"nil", nil, ""},
		{"not exist", fs.ErrNotExist, ReasonNotFound},
		{"path error not exist", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, ReasonNotFound},
		{"exist", fs.ErrExist, ReasonAlreadyExists},
		{"link error exist", &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EEXIST}, ReasonAlreadyExists},
		{"not empty", &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.ENOTEMPTY}, ReasonAlreadyExists},
		{"permission", &fs.PathError{Op: "mkdir", Path: "/x", Err: syscall.EACCES}, ReasonPermissionDenied},
		{"not a directory", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOTDIR}, ReasonNotADirectory},
		{"is a directory", &fs.PathError{Op: "open", Path: "/x", Err: syscall.EISDIR}, ReasonIsADirectory},
		{"wrapped", fmt.Errorf("outer: %w", fs.ErrPermission), ReasonPermissionDenied},
		{"other", errors.New("boom"), ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_RealErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := os.Stat(filepath.Join(dir, "missing"))
	assert.Equal(t, ReasonNotFound, Classify(err))

	err = os.Mkdir(file, 0o755)
	assert.Equal(t, ReasonAlreadyExists, Classify(err))

	_, err = NewOSFileSystem().ListDir(file)
	assert.Equal(t, ReasonNotADirectory, Classify(err))
}

func TestFailureReason_Description(t *testing.T) {
	assert.Equal(t, "not found", ReasonNotFound.Description())
	assert.Equal(t, "is a directory", ReasonIsADirectory.Description())
	assert.Equal(t, "unexpected error", ReasonUnknown.Description())
}
