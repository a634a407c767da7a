package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("first"))  //nolint:err113
		c.Add(errors.New("second")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection yields nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		err := errors.New("only") //nolint:err113
		c := &Collection{}
		c.Add(err)

		assert.Same(t, err, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")   //nolint:err113
		second := errors.New("second") //nolint:err113

		c := &Collection{}
		c.Add(first)
		c.Add(second)

		joined := c.GetError()

		require.Error(t, joined)
		assert.ErrorIs(t, joined, first)
		assert.ErrorIs(t, joined, second)
	})

	t.Run("clear resets the collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("boom")) //nolint:err113
		c.Clear()

		assert.False(t, c.HasError())
		require.NoError(t, c.GetError())
	})
}
