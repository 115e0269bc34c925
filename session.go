// session.go — the explicit execution-context object for display state.
//
// A Session owns the three pieces of mutable-ish display state: options, a
// registry, and the single "last unhandled error" slot. The slot is
// overwritten wholesale on each record, never merged. There is deliberately
// no package-level session: hosts with concurrent execution contexts keep
// one Session per context, and the conditions themselves are immutable, so
// no locking is needed anywhere.
package xgxcond

// Session carries per-execution-context display state.
// A Session value is NOT safe for concurrent use; share conditions, not
// sessions.
type Session struct {
	// Options tune display. Zero fields fall back to defaults.
	Options Options

	// Registry resolves message parts. Nil falls back to DefaultRegistry.
	Registry *Registry

	lastErr ErrorCondition
}

// NewSession returns a session with the given options (normalized) and the
// default registry.
func NewSession(opts Options) *Session {
	return &Session{
		Options:  opts.normalized(),
		Registry: DefaultRegistry,
	}
}

func (s *Session) registry() *Registry {
	if s.Registry != nil {
		return s.Registry
	}
	return DefaultRegistry
}

// width returns the display width budget, defaulting an unset (or bogus)
// value so a literal &Session{} honors the documented defaults the same way
// registry() does.
func (s *Session) width() int {
	if s.Options.Width > 0 {
		return s.Options.Width
	}
	return DefaultWidth
}

// RecordLastError stores ec as the context's last unhandled error,
// replacing any previous value wholesale. A nil ec clears the slot.
func (s *Session) RecordLastError(ec ErrorCondition) {
	s.lastErr = ec
}

// LastError returns the recorded last unhandled error, or nil.
func (s *Session) LastError() ErrorCondition {
	return s.lastErr
}

// isLastError reports whether cnd is the very value sitting in the slot.
// Identity, not equality: re-raised copies do not count.
func (s *Session) isLastError(cnd Condition) bool {
	return s.lastErr != nil && Condition(s.lastErr) == cnd
}
