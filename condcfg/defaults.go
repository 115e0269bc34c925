package condcfg

import "github.com/xgx-io/xgx-condition"

// Default values applied before overrides and normalization.
const (
	DefaultWidth         = xgxcond.DefaultWidth
	DefaultBacktraceMode = string(xgxcond.DefaultBacktraceMode)
)

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Display.Width == 0 {
		cfg.Display.Width = DefaultWidth
	}
	if cfg.Display.BacktraceMode == "" {
		cfg.Display.BacktraceMode = DefaultBacktraceMode
	}
}
