// class.go — classification tags for xgx-condition core.
//
// Intent:
//   - A classification is an ordered label sequence, most specific first,
//     always ending in one of the three base kinds.
//   - Native conditions carry the marker label so chain walking and display
//     can distinguish them from adapted foreign errors.
//   - Semantics stay open-ended: producers mint their own specific labels;
//     the core reserves only the base kinds and the marker.
//
// Conventions (documented, not enforced here):
//   - Labels are lowercase snake_case ASCII.
//   - Specific labels SHOULD end in "_error"/"_warning" for greppability.
package xgxcond

import "slices"

// Kind is one of the three base condition kinds every classification ends in.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindMessage Kind = "message"
)

// MarkerLabel tags conditions constructed by this package. Foreign errors
// adapted via From/Wrap do not carry it.
const MarkerLabel = "xgx_cond"

// baseKinds is the ordered set of base kinds. Order is stable to minimize
// churn in docs/examples.
var baseKinds = []Kind{KindError, KindWarning, KindMessage}

// baseKindSet provides O(1) membership checks for base kinds.
var baseKindSet = map[string]struct{}{
	string(KindError):   {},
	string(KindWarning): {},
	string(KindMessage): {},
}

// BaseKinds returns a defensive copy of the base kinds in a stable order.
func BaseKinds() []Kind {
	out := make([]Kind, len(baseKinds))
	copy(out, baseKinds)
	return out
}

// Classification is an ordered label sequence attached to a condition,
// most specific label first. A valid classification is non-empty, contains
// exactly one base kind, and ends with it.
type Classification []string

// ErrorClass builds a native error classification from specific labels.
// ErrorClass("parse_error") → ["parse_error", "xgx_cond", "error"].
func ErrorClass(specific ...string) Classification {
	return makeClass(specific, KindError)
}

// WarningClass builds a native warning classification.
func WarningClass(specific ...string) Classification {
	return makeClass(specific, KindWarning)
}

// MessageClass builds a native message classification.
func MessageClass(specific ...string) Classification {
	return makeClass(specific, KindMessage)
}

func makeClass(specific []string, kind Kind) Classification {
	out := make(Classification, 0, len(specific)+2)
	out = append(out, specific...)
	out = append(out, MarkerLabel, string(kind))
	return out
}

// foreignClass is the classification given to adapted foreign errors:
// error-based, no marker.
func foreignClass() Classification {
	return Classification{string(KindError)}
}

// Kind returns the base kind of the classification, or "" if the
// classification carries none (which Validate rejects).
func (c Classification) Kind() Kind {
	for _, label := range c {
		if _, ok := baseKindSet[label]; ok {
			return Kind(label)
		}
	}
	return ""
}

// Has reports whether the classification contains the given label.
func (c Classification) Has(label string) bool {
	return slices.Contains(c, label)
}

// IsNative reports whether the classification carries the package marker.
func (c Classification) IsNative() bool {
	return c.Has(MarkerLabel)
}

// Validate checks the classification invariant: non-empty, exactly one base
// kind, base kind last. Violations yield an invalid_argument error.
func (c Classification) Validate() error {
	if len(c) == 0 {
		return invalidArgumentf("classification must not be empty")
	}
	count := 0
	for _, label := range c {
		if _, ok := baseKindSet[label]; ok {
			count++
		}
	}
	if count == 0 {
		return invalidArgumentf("classification %v must include one of the base kinds error/warning/message", []string(c))
	}
	if count > 1 {
		return invalidArgumentf("classification %v must include exactly one base kind, found %d", []string(c), count)
	}
	if _, ok := baseKindSet[c[len(c)-1]]; !ok {
		return invalidArgumentf("classification %v must end with its base kind", []string(c))
	}
	return nil
}

// clone returns a defensive copy so published conditions never alias
// caller-owned label slices.
func (c Classification) clone() Classification {
	if len(c) == 0 {
		return nil
	}
	out := make(Classification, len(c))
	copy(out, c)
	return out
}

// Well-known classifications shipped by the core. Producers may mint their
// own freely; these exist for ergonomics and docs.
var (
	ClassError      = ErrorClass()
	ClassWarning    = WarningClass()
	ClassMessage    = MessageClass()
	ClassDeprecated = WarningClass("deprecated_warning")
	ClassInterrupt  = ErrorClass("interrupt_error")
)
