// typed_field.go — optional, type-safe accessors for condition fields.
//
// TypedField is an ergonomic layer over the plain string/any field API
// (With, the kv constructors). It does not replace it: producers can mix
// .With("k", v) with TypedField[T]("k").Set/Get freely.
//
// Caveats:
//   - Get performs a type assertion; the stored dynamic type must match T
//     exactly, no conversions.
//   - Get reads via Condition.Fields(), which is copy-on-read (one map
//     allocation per call). Fine off the hot path; conditions are not.
package xgxcond

import "fmt"

// TypedField is a zero-policy helper for type-safe field access.
// T is the Go type stored and retrieved for the given key.
type TypedField[T any] struct {
	key string
}

// FieldKey constructs a TypedField[T] for a given key.
// Keys SHOULD be snake_case for consistency across logs/exports.
func FieldKey[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying string key for this field.
func (f TypedField[T]) Key() string { return f.key }

// Set attaches (key = val) to cnd and returns the NEW Condition.
func (f TypedField[T]) Set(cnd Condition, val T) Condition {
	if cnd == nil {
		return nil
	}
	return cnd.With(f.key, any(val))
}

// Get retrieves the typed value for this field from cnd. Returns
// (zero, false) if cnd is nil, the field is absent, or the stored value has
// a different dynamic type than T.
func (f TypedField[T]) Get(cnd Condition) (T, bool) {
	var zero T
	if cnd == nil {
		return zero, false
	}
	m := cnd.Fields()
	if m == nil {
		return zero, false
	}
	v, ok := m[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet retrieves the typed value or panics. Intended for test code and
// contexts where absence is a programming error, not a runtime condition.
func (f TypedField[T]) MustGet(cnd Condition) T {
	var zero T
	if cnd == nil {
		panic(fmt.Errorf("xgxcond.TypedField[%T](%q): condition is nil", zero, f.key))
	}
	v, ok := cnd.Fields()[f.key]
	if !ok {
		panic(fmt.Errorf("xgxcond.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("xgxcond.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}
