// doc.go — package documentation for xgx-condition
//
// Package xgxcond provides a structured condition-signaling core: classified
// error/warning/message conditions, a three-part message-assembly protocol
// (header/body/footer), bullet-list text formatting, causal chains, and
// backtrace rendering. It is designed to be:
//   - Ergonomic at raise sites (small surface, clear semantics)
//   - Interoperable with the stdlib (error conditions satisfy error and
//     unwrap to their causal parent for errors.Is/As)
//   - Policy-free (no terminal I/O or telemetry in core; display goes
//     through injected writers and formatters)
//
// # Classification
//
// Every condition carries a classification: an ordered label sequence, most
// specific first, ending in one of the base kinds "error", "warning", or
// "message". Conditions built by this package also carry the marker label
// "xgx_cond", which distinguishes them from foreign errors adapted via
// From/Wrap. Use ErrorClass/WarningClass/MessageClass to build valid tags:
//
//	class := xgxcond.ErrorClass("parse_error")
//	// → ["parse_error", "xgx_cond", "error"]
//
// # Message Assembly
//
// A condition's displayed message is assembled from three independently
// overridable parts:
//
//   - header: defaults to the condition's message
//   - body:   defaults to empty; per-instance override via WithBody (fixed
//     lines, bullets, or a function computing lines from the condition)
//   - footer: defaults to the stored footer lines
//
// Producers that share a header across a family of conditions register
// per-label handlers on a Registry; dispatch walks the classification most
// specific first and falls back to the defaults above. DefaultRegistry is
// the registry used by RenderMessage and by each condition's Error method.
//
// # Bullets
//
// Multi-line messages use role-tagged bullet lines:
//
//	lines, _ := xgxcond.FormatBullets([]xgxcond.Bullet{
//	    {Role: xgxcond.RoleNone, Text: "Found 2 problems:"},
//	    {Role: xgxcond.RoleCross, Text: "column `x` is missing"},
//	    {Role: xgxcond.RoleInfo, Text: "did you mean `y`?"},
//	})
//	// → ["Found 2 problems:", "x column `x` is missing", "i did you mean `y`?"]
//
// A fully unnamed input is promoted to "*" bullets. Rich rendering (colored
// glyphs, width-aware wrapping) is delegated to any Formatter implementation;
// see the clifmt subpackage for the reference one.
//
// # Chains and Backtraces
//
// Error conditions may carry a causal parent and a captured Trace. Display
// walks the parent chain, prefixing each block ("Error: ...", "Caused by
// error: ..."), and stops at the first non-error ancestor. Traces are stored
// as a flat frame arena with parent indices (an encoded forest) and render in
// four modes: full tree, branch (root-to-leaf path), collapse (branch with
// repeated frames merged), and reminder.
//
// # Sessions
//
// Display state — options, registry, and the "last unhandled error" slot —
// lives on an explicit Session value, one per logical execution context.
// There is deliberately no process-global session: hosts with concurrent
// contexts must keep one Session per context. Condition and Trace values are
// immutable after construction, so sharing them across contexts is safe.
//
// # Failure Taxonomy
//
// The package reports its own failures with coded errors:
//   - type_mismatch: constructor given the wrong shape for trace or parent
//   - invalid_argument: unrecognized bullet role, invalid body override,
//     malformed trace parent indices
//   - invalid_state: internal contract violations (not user-reachable)
//
// Constructor validation fails immediately; display-time configuration
// problems (an unknown backtrace mode, say) are downgraded to a log/slog
// warning plus a safe default so that reporting one error never masks
// another. A failing body-override function, by contrast, propagates out of
// Assemble/RenderMessage: masking a buggy override would hide real defects.
//
// # Formatting
//
// Conditions implement fmt.Formatter:
//   - %v, %s → concise rendered message
//   - %+v    → verbose multi-line (classification, fields, parent, trace)
//   - %q     → quoted concise form
package xgxcond
