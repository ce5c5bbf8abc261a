// Package config loads runtime settings from PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide settings. Command-line flags override these values.
type Config struct {
	// Dir is where the theme preference lives (default ~/.portfolio).
	Dir string `env:"PORTFOLIO_DIR"`
	// PrefsBackend is auto|json|sqlite.
	PrefsBackend string `env:"PORTFOLIO_PREFS_BACKEND" envDefault:"auto"`
	// Mode is the start mode: graphical|terminal.
	Mode     string        `env:"PORTFOLIO_MODE"      envDefault:"graphical"`
	GUIDelay time.Duration `env:"PORTFOLIO_GUI_DELAY" envDefault:"500ms"`
	// DebugLog receives log output while the TUI owns the screen.
	DebugLog string `env:"PORTFOLIO_DEBUG_LOG"`
	Format   string `env:"PORTFOLIO_FORMAT" envDefault:"json"`
}

// Default returns the configuration used when the environment is unreadable.
func Default() Config {
	return Config{
		PrefsBackend: "auto",
		Mode:         "graphical",
		GUIDelay:     500 * time.Millisecond,
		Format:       "json",
	}
}

// Load parses the environment on top of the defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	if cfg.GUIDelay < 0 {
		return Default(), fmt.Errorf("parse env: PORTFOLIO_GUI_DELAY must not be negative")
	}
	return cfg, nil
}
