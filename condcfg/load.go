package condcfg

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/xgx-io/xgx-condition"
)

// Environment variable names recognized by LoadWithEnvOverrides.
// Environment always takes precedence over file-based configuration.
const (
	EnvWidth         = "XGXCOND_DISPLAY_WIDTH"
	EnvBacktraceMode = "XGXCOND_BACKTRACE_MODE"
	EnvShowLocations = "XGXCOND_SHOW_LOCATIONS"
	EnvCLIFormat     = "XGXCOND_CLI_FORMAT"
)

// Load reads configuration from a YAML file, applies defaults, and
// normalizes malformed values (warn + fallback). An unreadable or
// unparsable file is the only hard error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	normalize(&cfg)
	return &cfg, nil
}

// LoadWithEnvOverrides loads configuration from a YAML file and applies
// XGXCOND_* environment overrides on top. An empty path starts from the
// defaults instead of a file.
func LoadWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = DefaultConfig()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)
	normalize(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvWidth); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			cfg.Display.Width = w
		} else {
			slog.Warn("ignoring non-numeric display width override", "var", EnvWidth, "value", v)
		}
	}
	if v := os.Getenv(EnvBacktraceMode); v != "" {
		cfg.Display.BacktraceMode = v
	}
	if v := os.Getenv(EnvShowLocations); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.ShowLocations = &b
		} else {
			slog.Warn("ignoring non-boolean override", "var", EnvShowLocations, "value", v)
		}
	}
	if v := os.Getenv(EnvCLIFormat); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.CLIFormat = b
		} else {
			slog.Warn("ignoring non-boolean override", "var", EnvCLIFormat, "value", v)
		}
	}
}

// normalize downgrades malformed values to a warning plus the safe default.
// Display configuration failures must never mask the condition being
// reported, so nothing here is fatal.
func normalize(cfg *Config) {
	if cfg.Display.Width < 0 {
		slog.Warn("ignoring negative display width", "width", cfg.Display.Width, "fallback", DefaultWidth)
		cfg.Display.Width = DefaultWidth
	}
	if cfg.Display.BacktraceMode != "" {
		if _, err := xgxcond.ParseBacktraceMode(cfg.Display.BacktraceMode); err != nil {
			slog.Warn("ignoring unsupported backtrace mode", "mode", cfg.Display.BacktraceMode, "fallback", DefaultBacktraceMode)
			cfg.Display.BacktraceMode = DefaultBacktraceMode
		}
	}
}
