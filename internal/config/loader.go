package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "fman"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// Environment variables applied after the config file.
const (
	EnvRoot        = "FMAN_ROOT"
	EnvLogLevel    = "FMAN_LOG_LEVEL"
	EnvLogFile     = "FMAN_LOG_FILE"
	EnvMetricsAddr = "FMAN_METRICS_ADDR"
)

// FileSystem abstracts file and environment access for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	LookupEnv(key string) (string, bool)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (ConfigFileReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs   FileSystem
	path string
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// WithPath makes the loader read path instead of ~/.config/fman/config.json.
// An explicit path must exist.
func (l *Loader) WithPath(path string) *Loader {
	l.path = path
	return l
}

// Load reads configuration from ~/.config/fman/config.json (or the WithPath file),
// merges it with defaults, then applies non-empty FMAN_* environment overrides.
// Returns default config if the default dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath, explicit, err := l.configPath()
	if err != nil {
		// Can't find a home dir: defaults plus environment
		l.applyEnv(cfg)
		return cfg, cfg.Validate()
	}

	data, err := l.fs.ReadFile(configPath)
	switch {
	case err == nil:
		// Present keys overwrite defaults (even if zero), missing keys leave them untouched.
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Use defaults if file doesn't exist
	default:
		return nil, err
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) configPath() (string, bool, error) {
	if l.path != "" {
		return l.path, true, nil
	}
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile), false, nil
}

func (l *Loader) applyEnv(cfg *Config) {
	if v, ok := l.fs.LookupEnv(EnvRoot); ok && v != "" {
		cfg.Engine.DefaultRoot = v
	}
	if v, ok := l.fs.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := l.fs.LookupEnv(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := l.fs.LookupEnv(EnvMetricsAddr); ok && v != "" {
		cfg.Metrics.Addr = v
	}
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
