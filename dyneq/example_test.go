package dyneq_test

import (
	"fmt"

	"github.com/amp-labs/amp-dyneq/dyneq"
)

// Currency is an abstract interface made comparable by embedding the
// capability. It has no knowledge of its implementers.
type Currency interface {
	dyneq.Eq
	Symbol() string
}

type USD struct {
	dyneq.Impl[USD]
	Cents int64
}

func (USD) Symbol() string { return "$" }

type EUR struct {
	dyneq.Impl[EUR]
	Cents int64
}

func (EUR) Symbol() string { return "€" }

func ExampleEqual() {
	var a, b, c, d Currency = USD{Cents: 500}, USD{Cents: 500}, USD{Cents: 1000}, EUR{Cents: 500}

	fmt.Println(dyneq.Equal(a, b)) // same type, same value
	fmt.Println(dyneq.Equal(a, c)) // same type, different value
	fmt.Println(dyneq.Equal(a, d)) // different type, same value
	// Output:
	// true
	// false
	// false
}

func ExampleBox() {
	wallet := []*dyneq.Box[Currency]{
		dyneq.NewBox[Currency](USD{Cents: 500}),
		dyneq.NewBox[Currency](EUR{Cents: 250}),
	}

	fmt.Println(wallet[0].Equals(dyneq.NewBox[Currency](USD{Cents: 500})))
	fmt.Println(wallet[1].EqualsValue(USD{Cents: 250}))
	// Output:
	// true
	// false
}

func ExampleLift() {
	a := dyneq.Lift(42)
	b := dyneq.Lift(42)
	c := dyneq.Lift(int64(42))

	fmt.Println(dyneq.Equal(a, b))
	fmt.Println(dyneq.Equal(a, c))
	// Output:
	// true
	// false
}
