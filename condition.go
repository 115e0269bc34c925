// condition.go — the condition contracts for xgx-condition core.
//
// Design tenets:
//   - Interop-first: error conditions satisfy error and unwrap to their
//     causal parent so errors.Is/As observe full chains.
//   - Minimal surface: no terminal I/O, logging, or JSON in core.
//   - Non-mutating ergonomics: fluent builders return a new value.
//   - Display is separate: rendering lives on Registry/Session, so a
//     condition value stays a plain immutable record.
package xgxcond

// Condition is the immutable record for a raised signal. All fluent methods
// MUST be non-mutating: they return a new Condition (copy-on-write) and MUST
// NOT alter the receiver. This guarantees thread-safety for shared condition
// values without external synchronization.
type Condition interface {
	// Class returns the classification tag, most specific label first.
	// The returned slice is a defensive copy.
	Class() Classification

	// Message returns the producer-supplied message used as the default
	// header line.
	Message() string

	// Call returns the invoking call-site reference, or nil. Display-only.
	Call() *Call

	// UseCLIFormat reports whether assembly should delegate to the injected
	// rich formatter instead of plain newline joining.
	UseCLIFormat() bool

	// Body returns the per-instance body override. The zero BodyOverride
	// means "not set" and defers to registry dispatch.
	Body() BodyOverride

	// Footer returns the footer override lines, or nil. The returned slice
	// is a defensive copy.
	Footer() []string

	// Fields returns a shallow COPY of the producer-supplied extra fields
	// as a map (copy-on-read, last-write-wins on duplicate keys). Safe for
	// callers to mutate.
	Fields() map[string]any

	// With adds a single extra field. Returns a NEW Condition.
	With(key string, val any) Condition

	// WithFooter replaces the footer lines. Returns a NEW Condition.
	WithFooter(lines ...string) Condition

	// WithBody sets the body override. Accepted shapes: string, []string,
	// []Bullet, BodyFunc, func(Condition) []string, func() []string, or
	// func() string. Anything else is recorded as-is and fails with
	// invalid_argument when the body is resolved. Returns a NEW Condition.
	WithBody(v any) Condition

	// WithCall attaches a call-site reference. Returns a NEW Condition.
	WithCall(call *Call) Condition

	// WithCLIFormat sets the rich-formatting flag. Returns a NEW Condition.
	WithCLIFormat(on bool) Condition
}

// ErrorCondition is a Condition whose classification includes the "error"
// base kind. It adds an optional backtrace and an optional causal parent,
// and satisfies the stdlib error interface.
type ErrorCondition interface {
	Condition

	// error: the canonical message string, rendered through the default
	// registry. Rendering failures fall back to the raw message — reporting
	// a crash must never crash.
	error

	// Trace returns the captured backtrace, or nil.
	Trace() *Trace

	// Parent returns the causal parent condition, or nil. Chains are
	// singly-linked and must be acyclic; display walking stops at the first
	// non-error ancestor.
	Parent() Condition

	// Unwrap exposes the causal chain to errors.Is/As: the parent when it
	// is itself an error, else the wrapped foreign cause, else nil.
	Unwrap() error
}
