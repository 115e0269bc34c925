// format.go — fmt.Formatter implementations for xgx-condition.
//
// Behavior:
//
//	%s, %v   → concise rendered message.
//	%+v      → verbose, structured multi-line format:
//	             class=[label ...] msg="<message>"
//	             fields: key1=val1 key2=val2 ...
//	             parent: <recursively formatted with %+v>
//	             trace:
//	               funcA() file.go:123
//	               funcB() other.go:45
//
// Rationale:
//   - Keep core free of logging policy; only fmt formatting.
//   - Deterministic field order via the internal []Field slice.
//   - Defer parent formatting to fmt with %+v to preserve nested details.
package xgxcond

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line rendered message.
func formatConcise(w io.Writer, cnd Condition) {
	msg, err := RenderMessage(cnd)
	if err != nil || msg == "" {
		msg = cnd.Message()
	}
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, msg)
}

// formatVerbose writes the structured multi-line representation. Sections
// for absent slots are omitted.
func formatVerbose(w io.Writer, class Classification, msg string, extra fields, parent Condition, tr *Trace) {
	_, _ = fmt.Fprintf(w, "class=%v msg=%q", []string(class), msg)

	if len(extra) > 0 {
		_, _ = io.WriteString(w, "\nfields:")
		for _, f := range extra {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if parent != nil {
		_, _ = io.WriteString(w, "\nparent: ")
		_, _ = fmt.Fprintf(w, "%+v", parent)
	}

	if tr.Len() > 0 {
		_, _ = io.WriteString(w, "\ntrace:")
		for _, fr := range tr.Frames() {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Repr, fr.File, fr.Line)
		}
	}
}

func (c *cond) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, c.class, c.msg, c.extra, nil, nil)
			return
		}
		formatConcise(s, c)
	case 's':
		formatConcise(s, c)
	case 'q':
		msg, err := RenderMessage(c)
		if err != nil {
			msg = c.msg
		}
		_, _ = fmt.Fprintf(s, "%q", msg)
	default:
		formatConcise(s, c)
	}
}

func (e *errorCond) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e.class, e.msg, e.extra, e.parent, e.trace)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
