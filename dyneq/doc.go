// Package dyneq makes interface-typed values comparable for equality at
// runtime, without the interface declaration knowing its implementers.
//
// # Overview
//
// Go compares two interface values with == by comparing their dynamic
// types and then their values, but the comparison panics when the dynamic
// type does not support ==, and it cannot be customized, generated per
// interface, or extended to owning wrappers. This package provides a
// sealed [Eq] capability that eligible concrete types gain by embedding a
// zero-size witness, and a companion generator (cmd/dyneq-gen) that
// expands per-interface equality operators at build time.
//
// Two values compared through [Equal] are equal exactly when their runtime
// concrete types are identical and the values are equal under that type's
// native == equality. The combined relation is an equivalence relation
// whenever the native equality is one.
//
// # Usage
//
// Embed [Eq] in the abstract interface and [Impl] in each concrete type:
//
//	type Shape interface {
//	    dyneq.Eq
//	    Area() float64
//	}
//
//	type Circle struct {
//	    dyneq.Impl[Circle]
//	    Radius float64
//	}
//
//	type Square struct {
//	    dyneq.Impl[Square]
//	    Side float64
//	}
//
//	var a, b Shape = Circle{Radius: 2}, Square{Side: 2}
//	dyneq.Equal(a, b) // false: distinct concrete types, values never consulted
//
// Run dyneq-gen once per interface to generate named operators
// (EqualShape and friends) for every marker combination.
//
// # Sealing and eligibility
//
// [Eq] has only unexported methods, so the capability can be satisfied
// solely through the embedded [Impl] witness. Impl requires its type
// argument to be comparable, which restricts the capability to types that
// already possess native equality. Both restrictions hold at compile time;
// there is no runtime eligibility check.
//
// Bare comparable values (ints, strings) cannot embed a struct; wrap them
// with [Lift] to grant them the capability.
//
// # Thread safety
//
// Comparisons are synchronous and read-only over both operands; the
// package holds no mutable state and performs no locking. The
// [Transferable] and [Sharable] markers are type-system bookkeeping only
// and introduce no synchronization.
package dyneq
