package dyneq

// Box is an owning wrapper around an interface-typed value. It exists so
// that aggregates can hold a comparable field for a polymorphic member:
// Go's structural == on a struct with a bare interface field panics when
// the dynamic type is incomparable, and compares boxes by pointer
// identity. Box routes both cases through Equal instead.
//
// Box implements compare.Comparable[*Box[I]], so aggregates can derive
// their own Equals from the field-level one.
type Box[I Eq] struct {
	value I
}

// NewBox boxes an interface-typed value.
func NewBox[I Eq](value I) *Box[I] {
	return &Box[I]{value: value}
}

// Get returns the boxed value.
func (b *Box[I]) Get() I {
	return b.value
}

// Set replaces the boxed value.
func (b *Box[I]) Set(value I) {
	b.value = value
}

// Equals reports whether two boxes hold equal values under Equal.
// Nil boxes are only equal to nil boxes.
func (b *Box[I]) Equals(other *Box[I]) bool {
	if b == nil || other == nil {
		return b == other
	}

	return Equal(b.value, other.value)
}

// EqualsValue compares the boxed value against a bare reference to the
// same interface. This is the owning-pointer-versus-reference operator:
// it lets callers compare a Box against an unboxed value without
// re-boxing either side.
func (b *Box[I]) EqualsValue(value I) bool {
	if b == nil {
		return false
	}

	return Equal(b.value, value)
}
