// Package erasure converts concrete references into minimal type-erased
// handles and performs guarded downcasts back to named concrete types.
//
// A handle carries just enough runtime metadata to recover the identity of
// the concrete type and to attempt a safe downcast. It is the plumbing
// under generated comparison code and is not normally touched by end users.
package erasure

import (
	"reflect"

	"github.com/amp-labs/amp-dyneq/typeid"
)

// Erased is a minimal type-erased handle over a concrete value.
// The zero Erased represents an untyped nil.
type Erased struct {
	typ   reflect.Type
	id    typeid.ID
	value any
}

// Erase builds a handle from a value of a known comparable type.
// Restricting T to comparable types keeps ineligible values (those without
// native equality) out at compile time.
func Erase[T comparable](value T) Erased {
	return Erased{
		typ:   reflect.TypeOf(value),
		id:    typeid.For[T](),
		value: value,
	}
}

// FromValue builds a handle from a value whose static type has already
// been lost. Callers are expected to have established eligibility through
// other means; comparison code uses this to erase interface-typed operands.
func FromValue(value any) Erased {
	if value == nil {
		return Erased{}
	}

	return Erased{
		typ:   reflect.TypeOf(value),
		id:    typeid.Of(value),
		value: value,
	}
}

// To attempts a guarded downcast of the handle to the concrete type T.
// A handle holding a *T is unwrapped one level, matching the identity
// normalization in typeid. A mismatched target, a nil handle, or a nil
// pointer all yield the zero value and false, never a panic.
func To[T comparable](e Erased) (T, bool) {
	if v, ok := e.value.(T); ok {
		return v, true
	}

	if p, ok := e.value.(*T); ok && p != nil {
		return *p, true
	}

	var zero T

	return zero, false
}

// Type returns the dynamic type of the erased value as stored, without
// pointer normalization. Nil handles return nil.
func (e Erased) Type() reflect.Type {
	return e.typ
}

// ID returns the pointer-normalized identity of the erased value's type.
func (e Erased) ID() typeid.ID {
	return e.id
}

// Value returns the erased value itself.
func (e Erased) Value() any {
	return e.value
}

// IsNil reports whether the handle holds no value at all.
func (e Erased) IsNil() bool {
	return e.value == nil
}
