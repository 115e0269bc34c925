// options.go — display options and their defaults.
//
// The configuration surface is consumed here, not implemented: condcfg (or
// the host) produces an Options value; the core only defines the knobs and
// the downgrade rule for malformed values. Display-time configuration
// problems warn and fall back — they must never mask the condition being
// reported.
package xgxcond

import (
	"log/slog"
	"os"
	"strings"
)

// DefaultWidth is the display width assumed when none is configured. It
// feeds the prefix-length line-break heuristic.
const DefaultWidth = 80

// Options tune how a Session displays conditions.
type Options struct {
	// Width is the terminal width budget for the line-break heuristic.
	Width int

	// BacktraceMode selects the backtrace rendering for Print.
	BacktraceMode BacktraceMode

	// ShowLocations appends "at <file>:<line>" to call annotations.
	// Suppressed by default inside test binaries to keep expected output
	// stable.
	ShowLocations bool

	// CLIFormat requests rich formatting for every condition displayed
	// through the session, regardless of the per-condition flag.
	CLIFormat bool

	// Formatter renders rich output when CLI formatting applies. Nil falls
	// back to the plain joiner.
	Formatter Formatter
}

// DefaultOptions returns the stock display options: width 80, branch
// backtraces, locations shown outside test binaries, plain formatting.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		BacktraceMode: DefaultBacktraceMode,
		ShowLocations: !insideTestBinary(),
	}
}

// normalized fills zero values so a partially-populated Options behaves.
func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.BacktraceMode == "" {
		o.BacktraceMode = DefaultBacktraceMode
	}
	return o
}

// BacktraceModeOrDefault parses a raw mode setting, downgrading unsupported
// values to a slog warning plus the default: a typo in configuration must
// not abort the display of a real error.
func BacktraceModeOrDefault(raw string) BacktraceMode {
	if raw == "" {
		return DefaultBacktraceMode
	}
	mode, err := ParseBacktraceMode(raw)
	if err != nil {
		slog.Warn("ignoring unsupported backtrace mode", "mode", raw, "fallback", string(DefaultBacktraceMode))
		return DefaultBacktraceMode
	}
	return mode
}

// insideTestBinary detects automated-test execution, where source-location
// suffixes would make expected output churn with every edit.
func insideTestBinary() bool {
	if len(os.Args) == 0 {
		return false
	}
	exe := os.Args[0]
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}
