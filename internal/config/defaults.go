package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile and environment.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Engine  EngineConfig  `json:"engine"`
	UI      UIConfig      `json:"ui"`
	Log     LogConfig     `json:"log"`
	Metrics MetricsConfig `json:"metrics"`
}

type EngineConfig struct {
	// Root chosen at startup when none is given on the command line. Empty = no root.
	DefaultRoot string `json:"default_root"`

	// CreateFile refuses existing targets instead of truncating them.
	ExclusiveCreate bool `json:"exclusive_create"` // Default: false

	// Octal permission strings used for new entries.
	DirPerm  string `json:"dir_perm"`  // Default: "0755"
	FilePerm string `json:"file_perm"` // Default: "0644"

	// Mark snapshot entries matched by the root's .gitignore.
	AnnotateIgnored bool `json:"annotate_ignored"` // Default: true
}

type UIConfig struct {
	ColorPrimary   string `json:"color_primary"`    // Default: "63"
	ColorError     string `json:"color_error"`      // Default: "196"
	ColorMuted     string `json:"color_muted"`      // Default: "241"
	TickIntervalMs int    `json:"tick_interval_ms"` // Default: 100
	// Hide dot entries in the tree view. The snapshot itself always lists them.
	HideDotEntries bool `json:"hide_dot_entries"` // Default: false
}

type LogConfig struct {
	Level  string `json:"level"`  // Default: "info"
	Format string `json:"format"` // Default: "json"
	// Empty means logging.DefaultFile() for every command. "stderr" logs to the terminal.
	File string `json:"file"`
}

type MetricsConfig struct {
	// Address for the /metrics listener. Empty disables it.
	Addr string `json:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			ExclusiveCreate: false,
			DirPerm:         "0755",
			FilePerm:        "0644",
			AnnotateIgnored: true,
		},
		UI: UIConfig{
			ColorPrimary:   "63",
			ColorError:     "196",
			ColorMuted:     "241",
			TickIntervalMs: 100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DirMode returns DirPerm as a file mode. Validate guarantees it parses.
func (e EngineConfig) DirMode() os.FileMode {
	return parseMode(e.DirPerm, 0o755)
}

// FileMode returns FilePerm as a file mode. Validate guarantees it parses.
func (e EngineConfig) FileMode() os.FileMode {
	return parseMode(e.FilePerm, 0o644)
}

func parseMode(s string, fallback os.FileMode) os.FileMode {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return fallback
	}
	return os.FileMode(v)
}
