package dyneq

import (
	"reflect"

	"github.com/amp-labs/amp-dyneq/assert"
	"github.com/amp-labs/amp-dyneq/erasure"
	"github.com/amp-labs/amp-dyneq/typeid"
)

// Equal reports whether two interface-typed values are equal: their
// runtime concrete types must be identical and the values equal under the
// type's native equality. The concrete types are never consulted
// statically, so a and b may hold any mix of implementers.
//
// Two nil interfaces are equal; a nil interface never equals a non-nil
// one. A handle wrapping a nil pointer compares unequal to everything,
// including itself.
func Equal(a, b Eq) bool {
	switch {
	case a == nil || b == nil:
		return a == nil && b == nil
	case isNilPointer(a) || isNilPointer(b):
		return false
	}

	if a.dynID() != b.dynID() {
		return false
	}

	return a.dynEq(erasure.FromValue(a), erasure.FromValue(b))
}

// NotEqual is the complement of Equal.
func NotEqual(a, b Eq) bool {
	return !Equal(a, b)
}

// EqualUnchecked compares two values assuming the caller has already
// verified that both hold the same concrete type, directly rather than
// through a pointer. It skips the identity probe and the guarded
// downcasts. Violating the contract panics.
//
// Prefer Equal; this variant exists for call sites that batch values by
// identity first (for example after grouping a slice with TypeID) and can
// therefore prove the contract structurally.
func EqualUnchecked(a, b Eq) bool {
	ea, eb := erasure.FromValue(a), erasure.FromValue(b)

	assert.True(ea.Type() == eb.Type(),
		"dyneq: unchecked compare across types %v and %v", ea.Type(), eb.Type())
	assert.True(ea.Type() != nil && ea.Type().Kind() != reflect.Ptr,
		"dyneq: unchecked compare requires direct value operands, got %v", ea.Type())

	return a.dynEqUnchecked(ea, eb)
}

// TypeID returns the identity probe of a value carrying the capability.
// Nil interfaces and nil-pointer handles report typeid.None.
func TypeID(v Eq) typeid.ID {
	if v == nil || isNilPointer(v) {
		return typeid.None
	}

	return v.dynID()
}

// EqualSlice reports whether two slices are pointwise equal under Equal.
func EqualSlice[I Eq](a, b []I) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualMap reports whether two maps hold the same keys with values that
// are pairwise equal under Equal.
func EqualMap[K comparable, I Eq](a, b map[K]I) bool {
	if len(a) != len(b) {
		return false
	}

	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}

// Index returns the index of the first element equal to target, or -1.
func Index[I Eq](values []I, target I) int {
	for i := range values {
		if Equal(values[i], target) {
			return i
		}
	}

	return -1
}

// Contains reports whether target occurs in values under Equal.
func Contains[I Eq](values []I, target I) bool {
	return Index(values, target) >= 0
}

// isNilPointer reports whether the interface wraps a nil pointer. Calling
// a promoted capability method through one would panic, so Equal screens
// these out up front.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
