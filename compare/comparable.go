// Package compare provides the equality vocabulary shared by the module:
// a type is Comparable when it can decide equality against another value
// of the same type. Aggregates that hold polymorphic members implement
// Comparable by delegating field comparisons to dyneq.Equal or to a
// dyneq.Box's Equals.
package compare

// Comparable is a generic interface for types that compare themselves for
// equality. Implementations decide their own semantics; the only
// requirement is that Equals behaves as an equivalence relation.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values through the Comparable interface. It
// delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// NotEquals is the complement of Equals.
func NotEquals[T any](a Comparable[T], b T) bool {
	return !a.Equals(b)
}

// AllEqual reports whether every adjacent pair in values is equal under
// the Comparable interface. Vacuously true for fewer than two values.
func AllEqual[C Comparable[C]](values ...C) bool {
	for i := 1; i < len(values); i++ {
		if !values[i-1].Equals(values[i]) {
			return false
		}
	}

	return true
}
