// Package typeid provides stable runtime identities for concrete Go types.
//
// An identity is a 64-bit token derived from the canonical, fully-qualified
// name of a type. Identities are pointer-normalized: a value and a pointer
// to it share the same identity, so the flavor of a polymorphic handle
// (value or pointer) never affects type discrimination.
//
// Tokens are a fast probe, not a proof: code that must be certain two
// values share a concrete type should follow a matching probe with a
// guarded downcast (see the erasure package).
package typeid

import (
	"reflect"
	"sync"

	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
)

// ID is a stable 64-bit identity token for a concrete type.
// The zero ID identifies the absence of a type (an untyped nil).
type ID uint64

// None is the identity of an untyped nil value.
const None ID = 0

// cache interns identities per reflect.Type so the name walk and hash run
// once per type for the lifetime of the process.
var cache sync.Map //nolint:gochecknoglobals

// internedCount tracks how many distinct types have been interned.
// Exposed through Interned for diagnostics.
var internedCount atomic.Int64 //nolint:gochecknoglobals

// For returns the identity of the type T.
//
// Example:
//
//	typeid.For[time.Duration]() // identity of time.Duration
//	typeid.For[*os.File]()      // same identity as typeid.For[os.File]()
func For[T any]() ID {
	return forType(reflect.TypeFor[T]())
}

// Of returns the identity of the dynamic type of value.
// A nil value has the None identity.
func Of(value any) ID {
	if value == nil {
		return None
	}

	return forType(reflect.TypeOf(value))
}

// TypeOf returns the pointer-normalized dynamic type of value, or nil if
// value is an untyped nil.
func TypeOf(value any) reflect.Type {
	if value == nil {
		return nil
	}

	return normalize(reflect.TypeOf(value))
}

// FullName returns the canonical fully-qualified name used to derive the
// identity of t, in the form "import/path".Name for named types. Unnamed
// types (slices, maps, anonymous structs) use their type literal syntax.
func FullName(t reflect.Type) string {
	t = normalize(t)

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return `"` + t.PkgPath() + `".` + t.Name()
}

// Interned returns the number of distinct types whose identity has been
// computed so far. Useful when logging generator or cache diagnostics.
func Interned() int64 {
	return internedCount.Load()
}

func forType(t reflect.Type) ID {
	t = normalize(t)

	if id, ok := cache.Load(t); ok {
		return id.(ID) //nolint:forcetypeassert
	}

	id := ID(xxh3.HashString(FullName(t)))

	if _, loaded := cache.LoadOrStore(t, id); !loaded {
		internedCount.Inc()
	}

	return id
}

// normalize strips pointer indirection so *T and T share one identity.
func normalize(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
