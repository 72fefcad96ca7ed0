package config

import (
	"fmt"
	"strconv"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Engine validation
	if !validPerm(c.Engine.DirPerm) {
		errs = append(errs, "engine.dir_perm must be an octal permission between 0000 and 0777")
	}
	if !validPerm(c.Engine.FilePerm) {
		errs = append(errs, "engine.file_perm must be an octal permission between 0000 and 0777")
	}

	// UI validation
	if c.UI.TickIntervalMs < 10 {
		errs = append(errs, "ui.tick_interval_ms must be >= 10")
	}

	// Log validation
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, "log.format must be json or console")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

func validPerm(s string) bool {
	v, err := strconv.ParseUint(s, 8, 32)
	return err == nil && v <= 0o777
}
