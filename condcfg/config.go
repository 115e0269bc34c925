package condcfg

import (
	"github.com/xgx-io/xgx-condition"
)

// Config is the root configuration structure for condition display.
type Config struct {
	// Display controls message layout and backtrace rendering.
	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig mirrors the knobs of xgxcond.Options in file form.
type DisplayConfig struct {
	// Width is the terminal width budget for the line-break heuristic.
	Width int `yaml:"width"`

	// BacktraceMode is one of "reminder", "branch", "collapse", "full".
	// Unsupported values warn and fall back to "branch".
	BacktraceMode string `yaml:"backtrace_mode"`

	// ShowLocations toggles "at <file>:<line>" suffixes. Unset defers to
	// the core's test-binary heuristic.
	ShowLocations *bool `yaml:"show_locations"`

	// CLIFormat requests rich formatting for every displayed condition.
	CLIFormat bool `yaml:"cli_format"`
}

// Options converts the configuration into display options for a session.
// The configuration must have been normalized (Load does this).
func (c *Config) Options() xgxcond.Options {
	opts := xgxcond.DefaultOptions()
	opts.Width = c.Display.Width
	opts.BacktraceMode = xgxcond.BacktraceModeOrDefault(c.Display.BacktraceMode)
	if c.Display.ShowLocations != nil {
		opts.ShowLocations = *c.Display.ShowLocations
	}
	opts.CLIFormat = c.Display.CLIFormat
	return opts
}
