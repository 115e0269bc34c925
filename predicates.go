// predicates.go — classification and failure predicates.
//
// Scope:
//   - Zero-policy helpers answering common questions about conditions and
//     about the package's own coded failures.
//   - Interop-first: failure predicates traverse wrap chains via errors.As,
//     so a wrapped type_mismatch stays detectable.
package xgxcond

import "errors"

// KindOf returns the condition's base kind ("" only for invalid tags, which
// the constructors reject).
func KindOf(cnd Condition) Kind {
	if cnd == nil {
		return ""
	}
	return cnd.Class().Kind()
}

// HasLabel reports whether the condition's classification carries label.
func HasLabel(cnd Condition, label string) bool {
	return cnd != nil && cnd.Class().Has(label)
}

// IsNative reports whether the condition was produced by this package
// (carries the marker label), as opposed to a foreign error adapted via
// From/Wrap.
func IsNative(cnd Condition) bool {
	return cnd != nil && cnd.Class().IsNative()
}

// AsCondition extracts a Condition from anywhere in err's unwrap chain.
func AsCondition(err error) (Condition, bool) {
	if err == nil {
		return nil, false
	}
	var ec ErrorCondition
	if errors.As(err, &ec) {
		return ec, true
	}
	return nil, false
}

// CodeOf returns the first failure Code along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv interface{ CodeVal() Code }
	if errors.As(err, &cv) {
		return cv.CodeVal()
	}
	return ""
}

// IsTypeMismatch reports whether err is (or wraps) a type_mismatch failure.
func IsTypeMismatch(err error) bool { return CodeOf(err) == CodeTypeMismatch }

// IsInvalidArgument reports whether err is (or wraps) an invalid_argument
// failure.
func IsInvalidArgument(err error) bool { return CodeOf(err) == CodeInvalidArgument }

// IsInvalidState reports whether err is (or wraps) an invalid_state failure.
func IsInvalidState(err error) bool { return CodeOf(err) == CodeInvalidState }
