package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})

	t.Run("wrap sentinel keeps classification", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrInvalidInput, "unknown rotor"), "rotor \"IX\"")
		assert.True(t, Is(wrapped, ErrInvalidInput))
		assert.False(t, Is(wrapped, errors.New("invalid input")))
	})
}

func TestWrapf(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrapf non-nil error", func(t *testing.T) {
		wrapped := Wrapf(baseErr, "wrapped %d", 123)
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped 123: base error", wrapped.Error())
		assert.ErrorIs(t, wrapped, baseErr)
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "wrapped %d", 123))
	})
}

func TestAs(t *testing.T) {
	err := Wrap(customError{Msg: "custom"}, "context")

	var target customError
	require.True(t, As(err, &target))
	assert.Equal(t, "custom", target.Msg)
}
