package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the supplied error for zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("order must be created via NewOrder")

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("should fall back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should detect unconstructed embedded guards", func(t *testing.T) {
		type command struct {
			guard guard.ConstructorGuard
		}
		notConstructed := errors.New("command must be created via its constructor")

		zero := command{}
		require.Error(t, zero.guard.Validate(notConstructed))

		constructed := command{guard: guard.NewConstructorGuard()}
		require.NoError(t, constructed.guard.Validate(notConstructed))
	})
}
