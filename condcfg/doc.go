// Package condcfg loads display configuration for xgx-condition sessions
// from a YAML file and environment variables.
//
// The loading sequence is:
//  1. Parse YAML from file (optional)
//  2. Apply default values
//  3. Apply environment variable overrides (XGXCOND_*)
//  4. Normalize: malformed values are downgraded to a log/slog warning
//     plus the safe default, never a fatal error — display configuration
//     must not prevent an error from being reported.
//
// The result converts to an xgxcond.Options via Config.Options.
package condcfg
