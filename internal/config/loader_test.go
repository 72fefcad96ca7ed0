package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
	Env         map[string]string
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *MockFileSystem) LookupEnv(key string) (string, bool) {
	v, ok := m.Env[key]
	return v, ok
}

const defaultPath = "/home/user/.config/fman/config.json"

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"engine": {"default_root": "/srv/data", "exclusive_create": true, "dir_perm": "0700", "file_perm": "0600", "annotate_ignored": false},
		"ui": {"color_primary": "99", "tick_interval_ms": 250, "hide_dot_entries": true},
		"log": {"level": "debug", "format": "console", "file": "/tmp/fman.log"},
		"metrics": {"addr": ":9200"}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(configJSON)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Engine.DefaultRoot)
	assert.True(t, cfg.Engine.ExclusiveCreate)
	assert.Equal(t, uint32(0o700), uint32(cfg.Engine.DirMode()))
	assert.False(t, cfg.Engine.AnnotateIgnored)
	assert.Equal(t, "99", cfg.UI.ColorPrimary)
	assert.Equal(t, 250, cfg.UI.TickIntervalMs)
	assert.True(t, cfg.UI.HideDotEntries)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9200", cfg.Metrics.Addr)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"ui": {"color_primary": "255"}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "255", cfg.UI.ColorPrimary) // Overridden
	assert.Equal(t, "196", cfg.UI.ColorError)   // Default preserved
	assert.Equal(t, 100, cfg.UI.TickIntervalMs) // Default preserved
	assert.True(t, cfg.Engine.AnnotateIgnored)  // Other section untouched
}

func TestLoad_ExplicitFalse_OverridesDefault(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"engine": {"annotate_ignored": false}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.False(t, cfg.Engine.AnnotateIgnored)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"log": {"level": "warn"}}`)},
		Env: map[string]string{
			EnvRoot:        "/from/env",
			EnvLogLevel:    "debug",
			EnvLogFile:     "/var/log/fman.log",
			EnvMetricsAddr: "127.0.0.1:9100",
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Engine.DefaultRoot)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/fman.log", cfg.Log.File)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
}

func TestLoad_WithPath_ReadsThatFile(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{"/etc/fman.json": []byte(`{"engine": {"exclusive_create": true}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).WithPath("/etc/fman.json").Load()

	require.NoError(t, err)
	assert.True(t, cfg.Engine.ExclusiveCreate)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_WithPath_MissingFileIsAnError(t *testing.T) {
	fs := &MockFileSystem{HomeDir: "/home/user", Files: map[string][]byte{}}

	cfg, err := NewLoaderWithFS(fs).WithPath("/etc/missing.json").Load()

	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{invalid json`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`["not", "an", "object"]`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValue_FailsValidation(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{defaultPath: []byte(`{"engine": {"dir_perm": "rwx"}}`)},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "dir_perm")
}

func TestLoad_EmptyEnvIsIgnored(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Env:     map[string]string{EnvLogLevel: "", EnvRoot: ""},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidEnvLevel_FailsValidation(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Env:     map[string]string{EnvLogLevel: "loud"},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "log.level")
}
