// Package errors defines the module's sentinel errors and a small
// accumulator for batch operations that should report every failure
// rather than the first one.
package errors

import "errors"

var (
	// ErrWrongType is wrapped by type assertion failures.
	ErrWrongType = errors.New("wrong type")

	// ErrMalformedInvocation is wrapped by every expansion parse failure.
	ErrMalformedInvocation = errors.New("malformed invocation")
)

// Collection is a thread-unsafe utility for accumulating multiple errors,
// used when expanding several generation targets in one run: each target
// either succeeds or contributes its failure, and the caller reports them
// together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when
// empty, the sole error when there is one, and an errors.Join of all of
// them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
