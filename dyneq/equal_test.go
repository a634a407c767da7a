package dyneq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-dyneq/typeid"
)

// testShape is the abstract interface the tests compare through. It knows
// nothing about its implementers beyond the capability and one method.
type testShape interface {
	Eq
	area() float64
}

type circle struct {
	Impl[circle]

	radius float64
}

func (c circle) area() float64 { return 3 * c.radius * c.radius }

type square struct {
	Impl[square]

	side float64
}

func (s square) area() float64 { return s.side * s.side }

// liar embeds a witness for the wrong type. The checked compare must
// degrade this to not-equal instead of misbehaving.
type liar struct {
	Impl[circle]

	radius float64
}

func (l liar) area() float64 { return l.radius }

func TestEqual_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        testShape
		b        testShape
		expected bool
	}{
		{
			name:     "same type same value",
			a:        circle{radius: 5},
			b:        circle{radius: 5},
			expected: true,
		},
		{
			name:     "same type different value",
			a:        circle{radius: 5},
			b:        circle{radius: 10},
			expected: false,
		},
		{
			name:     "different type same value",
			a:        circle{radius: 5},
			b:        square{side: 5},
			expected: false,
		},
		{
			name:     "different type different value",
			a:        circle{radius: 5},
			b:        square{side: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
			assert.Equal(t, tt.expected, Equal(tt.b, tt.a), "must be symmetric")
			assert.Equal(t, !tt.expected, NotEqual(tt.a, tt.b))
		})
	}
}

func TestEqual_IsEquivalenceRelation(t *testing.T) {
	t.Parallel()

	t.Run("reflexive", func(t *testing.T) {
		t.Parallel()

		shapes := []testShape{circle{radius: 0}, circle{radius: 5}, square{side: 7}}

		for _, s := range shapes {
			assert.True(t, Equal(s, s))
		}
	})

	t.Run("agrees with native equality", func(t *testing.T) {
		t.Parallel()

		x, y := circle{radius: 5}, circle{radius: 5}

		assert.Equal(t, x == y, Equal(x, y))

		x, y = circle{radius: 5}, circle{radius: 6}

		assert.Equal(t, x == y, Equal(x, y))
	})

	t.Run("transitive", func(t *testing.T) {
		t.Parallel()

		x, y, z := circle{radius: 5}, circle{radius: 5}, circle{radius: 5}

		assert.True(t, Equal(x, y))
		assert.True(t, Equal(y, z))
		assert.True(t, Equal(x, z))
	})
}

func TestEqual_Handles(t *testing.T) {
	t.Parallel()

	t.Run("pointer and value handles are interchangeable", func(t *testing.T) {
		t.Parallel()

		v := circle{radius: 5}

		var byValue testShape = v

		var byPointer testShape = &v

		assert.True(t, Equal(byValue, byPointer))
		assert.True(t, Equal(byPointer, byValue))
		assert.True(t, Equal(byPointer, byPointer))
	})

	t.Run("both nil interfaces are equal", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equal(nil, nil))
	})

	t.Run("nil interface never equals a value", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Equal(nil, circle{radius: 5}))
		assert.False(t, Equal(circle{radius: 5}, nil))
	})

	t.Run("nil pointer handles compare unequal", func(t *testing.T) {
		t.Parallel()

		var p *circle

		var s testShape = p

		assert.False(t, Equal(s, s))
		assert.False(t, Equal(s, circle{radius: 5}))
	})
}

func TestEqual_LyingWitness(t *testing.T) {
	t.Parallel()

	a, b := liar{radius: 5}, liar{radius: 5}

	// The claimed identities match, so the probe passes; the guarded
	// downcast inside the compare is what rejects the pair.
	assert.False(t, Equal(testShape(a), testShape(b)))
	assert.False(t, Equal(testShape(a), testShape(circle{radius: 5})))
}

func TestEqualUnchecked(t *testing.T) {
	t.Parallel()

	t.Run("same concrete type compares values", func(t *testing.T) {
		t.Parallel()

		assert.True(t, EqualUnchecked(testShape(circle{radius: 5}), testShape(circle{radius: 5})))
		assert.False(t, EqualUnchecked(testShape(circle{radius: 5}), testShape(circle{radius: 6})))
	})

	t.Run("violating the contract panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			EqualUnchecked(testShape(circle{radius: 5}), testShape(square{side: 5}))
		})
	})
}

func TestTypeID(t *testing.T) {
	t.Parallel()

	t.Run("probes the granted type", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, typeid.For[circle](), TypeID(circle{radius: 1}))
		assert.NotEqual(t, TypeID(circle{radius: 1}), TypeID(square{side: 1}))
	})

	t.Run("nil reports None", func(t *testing.T) {
		t.Parallel()

		var p *circle

		assert.Equal(t, typeid.None, TypeID(nil))
		assert.Equal(t, typeid.None, TypeID(testShape(p)))
	})
}

func TestEqualSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        []testShape
		b        []testShape
		expected bool
	}{
		{
			name:     "equal heterogeneous slices",
			a:        []testShape{circle{radius: 1}, square{side: 2}},
			b:        []testShape{circle{radius: 1}, square{side: 2}},
			expected: true,
		},
		{
			name:     "order matters",
			a:        []testShape{circle{radius: 1}, square{side: 2}},
			b:        []testShape{square{side: 2}, circle{radius: 1}},
			expected: false,
		},
		{
			name:     "length mismatch",
			a:        []testShape{circle{radius: 1}},
			b:        []testShape{},
			expected: false,
		},
		{
			name:     "both empty",
			a:        nil,
			b:        []testShape{},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, EqualSlice(tt.a, tt.b))
		})
	}
}

func TestEqualMap(t *testing.T) {
	t.Parallel()

	t.Run("equal maps", func(t *testing.T) {
		t.Parallel()

		a := map[string]testShape{"c": circle{radius: 1}, "s": square{side: 2}}
		b := map[string]testShape{"s": square{side: 2}, "c": circle{radius: 1}}

		assert.True(t, EqualMap(a, b))
	})

	t.Run("value mismatch", func(t *testing.T) {
		t.Parallel()

		a := map[string]testShape{"c": circle{radius: 1}}
		b := map[string]testShape{"c": circle{radius: 2}}

		assert.False(t, EqualMap(a, b))
	})

	t.Run("key mismatch", func(t *testing.T) {
		t.Parallel()

		a := map[string]testShape{"c": circle{radius: 1}}
		b := map[string]testShape{"d": circle{radius: 1}}

		assert.False(t, EqualMap(a, b))
	})
}

func TestIndexContains(t *testing.T) {
	t.Parallel()

	shapes := []testShape{circle{radius: 1}, square{side: 2}, circle{radius: 3}}

	assert.Equal(t, 1, Index(shapes, testShape(square{side: 2})))
	assert.Equal(t, -1, Index(shapes, testShape(square{side: 9})))
	assert.True(t, Contains(shapes, testShape(circle{radius: 3})))
	assert.False(t, Contains(shapes, testShape(circle{radius: 9})))
}
