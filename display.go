// display.go — top-level orchestration of chain, message, and backtrace.
//
// FormatForDisplay is what backs both the print representation and the text
// handed to the host runtime as a condition's user-visible message:
// chain blocks first, then (errors only, top level only) the rendered
// backtrace, then — for the session's recorded last error under branch
// mode — a reminder pointing at the full view.
package xgxcond

import (
	"fmt"
	"io"
)

// DetailLevel selects how much Describe shows.
type DetailLevel int

const (
	// DetailMessage shows the chain message only.
	DetailMessage DetailLevel = iota
	// DetailBranch adds the root-to-leaf backtrace path.
	DetailBranch
	// DetailFull adds the complete backtrace tree.
	DetailFull
)

// LastErrorReminder is the fixed line appended when the session's last
// error is displayed with the branch view and a trace exists.
const LastErrorReminder = "Describe the last error with DetailFull to see the complete backtrace."

// FormatForDisplay renders cnd for a user: the prefixed chain message and,
// when requested and available, the backtrace section.
func (s *Session) FormatForDisplay(cnd Condition, showBacktrace bool, mode BacktraceMode) (string, error) {
	out, err := s.BuildChainMessage(cnd)
	if err != nil {
		return "", err
	}

	ec, isErr := cnd.(ErrorCondition)
	if showBacktrace && isErr && ec.Trace() != nil {
		if rendered, ok := RenderBacktrace(ec.Trace(), mode); ok {
			if mode == BacktraceReminder {
				out += "\n" + rendered
			} else {
				out += "\nBacktrace:\n" + rendered
			}
		}
	}

	if s.isLastError(cnd) && mode == BacktraceBranch && isErr && ec.Trace() != nil {
		out += "\n" + LastErrorReminder
	}
	return out, nil
}

// Print writes the condition's display form to w using the session's
// configured backtrace mode. If rendering fails (a broken body override),
// the raw message is still written before the error is returned: reporting
// a crash must surface SOME text.
func (s *Session) Print(w io.Writer, cnd Condition) error {
	out, err := s.FormatForDisplay(cnd, true, s.Options.BacktraceMode)
	if err != nil {
		fmt.Fprintln(w, cnd.Message())
		return err
	}
	_, werr := fmt.Fprintln(w, out)
	return werr
}

// Describe writes the condition's display form at the given detail level.
func (s *Session) Describe(w io.Writer, cnd Condition, detail DetailLevel) error {
	showBacktrace := detail > DetailMessage
	mode := BacktraceBranch
	if detail >= DetailFull {
		mode = BacktraceFull
	}
	out, err := s.FormatForDisplay(cnd, showBacktrace, mode)
	if err != nil {
		fmt.Fprintln(w, cnd.Message())
		return err
	}
	_, werr := fmt.Fprintln(w, out)
	return werr
}
