// xerrs.go — coded failures the package itself reports.
//
// Scope:
//   - Three codes: type_mismatch, invalid_argument, invalid_state.
//   - Constructor-time validation fails immediately with one of these;
//     well-formed input never makes message assembly or chain walking fail.
//   - Predicates live in predicates.go and match via errors.As over the
//     CodeVal() interface, so wrapped failures stay detectable.
package xgxcond

import "fmt"

// Code classifies the package's own failures into machine-readable
// categories. Stringly-typed for stability across serialization boundaries.
type Code string

const (
	// CodeTypeMismatch: a constructor was given a value of the wrong shape
	// (trace that is not a *Trace, parent that is not a Condition, ...).
	CodeTypeMismatch Code = "type_mismatch"

	// CodeInvalidArgument: an unrecognized bullet role, an invalid body
	// override, malformed trace parent indices, or an unsupported
	// configuration value.
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInvalidState: internal contract violations. Reserved; not
	// reachable through the documented surface.
	CodeInvalidState Code = "invalid_state"
)

// condError is the concrete coded failure type. It stays unexported; callers
// match on codes, not types.
type condError struct {
	code Code
	msg  string
}

func (e *condError) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return string(e.code) + ": " + e.msg
}

// CodeVal returns the failure's classification code.
func (e *condError) CodeVal() Code { return e.code }

func typeMismatchf(format string, args ...any) error {
	return &condError{code: CodeTypeMismatch, msg: fmt.Sprintf(format, args...)}
}

func invalidArgumentf(format string, args ...any) error {
	return &condError{code: CodeInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// invalidStatef is kept for internal assertions; nothing in the documented
// surface returns it.
func invalidStatef(format string, args ...any) error {
	return &condError{code: CodeInvalidState, msg: fmt.Sprintf(format, args...)}
}
