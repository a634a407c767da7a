// Package dyneq provides runtime equality for interface-typed values.
package dyneq

import (
	"github.com/amp-labs/amp-dyneq/erasure"
	"github.com/amp-labs/amp-dyneq/typeid"
)

// Eq is the capability that makes values of an abstract interface
// comparable through the interface. Embed it in the interface declaration;
// concrete types gain it by embedding [Impl]. The methods are unexported,
// so the capability cannot be implemented outside this package, which
// keeps the comparison semantics consistent across all implementers.
type Eq interface {
	// dynID is the identity probe: it reports the concrete type the
	// capability was granted for, independent of the value.
	dynID() typeid.ID

	// dynEq compares two erased operands as values of the granted type.
	// Both downcasts are guarded; any mismatch degrades to false.
	dynEq(a, b erasure.Erased) bool

	// dynEqUnchecked compares two erased operands assuming both hold the
	// granted type directly. Violating that assumption panics; callers
	// must have verified the operand types beforehand.
	dynEqUnchecked(a, b erasure.Erased) bool
}

// Impl grants the Eq capability to the concrete type T. Embed it as the
// first field of T:
//
//	type Circle struct {
//	    dyneq.Impl[Circle]
//	    Radius float64
//	}
//
// The comparable constraint is the eligibility check: only types with
// native == equality can carry the capability. Impl is zero-size and does
// not affect the comparability or layout of T.
//
// Embedding Impl with a type argument other than the outer type is a
// contract violation; the guarded downcasts in the checked compare turn
// it into not-equal results rather than misbehavior.
type Impl[T comparable] struct{}

func (Impl[T]) dynID() typeid.ID {
	return typeid.For[T]()
}

func (Impl[T]) dynEq(a, b erasure.Erased) bool {
	x, ok := erasure.To[T](a)
	if !ok {
		return false
	}

	y, ok := erasure.To[T](b)
	if !ok {
		return false
	}

	return x == y
}

func (Impl[T]) dynEqUnchecked(a, b erasure.Erased) bool {
	return a.Value().(T) == b.Value().(T) //nolint:forcetypeassert
}

// Lifted adapts a bare comparable value, which cannot embed a struct, into
// a carrier of the Eq capability. Two Lifted values are equal when their
// type arguments are identical and their values are equal; Lifted[uint8]
// and Lifted[uint16] holding the same number are not equal.
type Lifted[T comparable] struct {
	Impl[Lifted[T]]

	Value T
}

// Lift wraps value so it can travel behind an Eq-embedding interface.
func Lift[T comparable](value T) Lifted[T] {
	return Lifted[T]{Value: value}
}
