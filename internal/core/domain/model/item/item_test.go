package item_test

import (
	"testing"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrice(t *testing.T) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(100, 0)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	merchantID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		i, err := item.NewItem(validID, merchantID, "Gatorskins", validPrice(t), 12)

		require.NoError(t, err)
		require.NoError(t, i.Validate())
		assert.True(t, i.ID().IsEqual(validID))
		assert.True(t, i.MerchantID().IsEqual(merchantID))
		assert.Equal(t, "Gatorskins", i.Name())
		assert.Equal(t, 12, i.Inventory())
	})

	t.Run("should accept zero inventory", func(t *testing.T) {
		i, err := item.NewItem(validID, merchantID, "Pull Toy", validPrice(t), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, i.Inventory())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		i, err := item.NewItem(invalidID, merchantID, "Gatorskins", validPrice(t), 12)

		require.Error(t, err)
		assert.Nil(t, i)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		i, err := item.NewItem(validID, merchantID, "", validPrice(t), 12)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative inventory", func(t *testing.T) {
		i, err := item.NewItem(validID, merchantID, "Gatorskins", validPrice(t), -1)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "inventory")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var price kernel.Money

		i, err := item.NewItem(validID, merchantID, "Gatorskins", price, 12)

		require.Error(t, err)
		assert.Nil(t, i)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var price kernel.Money

		i, err := item.NewItem(invalidID, merchantID, "", price, -5)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "inventory")
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should fail for nil item", func(t *testing.T) {
		var i *item.Item

		require.Error(t, i.Validate())
	})

	t.Run("should fail for zero value item", func(t *testing.T) {
		var i item.Item

		err := i.Validate()

		require.Error(t, err)
		assert.Equal(t, item.ErrItemIsNotConstructed, err)
	})
}

func TestItem_DecrementInventory(t *testing.T) {
	newItem := func(t *testing.T, inventory int) *item.Item {
		i, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Pull Toy", validPrice(t), inventory)
		require.NoError(t, err)
		return i
	}

	t.Run("should reserve exactly the requested quantity", func(t *testing.T) {
		i := newItem(t, 32)

		err := i.DecrementInventory(3)

		require.NoError(t, err)
		assert.Equal(t, 29, i.Inventory())
	})

	t.Run("should drain inventory to zero", func(t *testing.T) {
		i := newItem(t, 5)

		require.NoError(t, i.DecrementInventory(5))
		assert.Equal(t, 0, i.Inventory())
	})

	t.Run("should fail when quantity exceeds stock", func(t *testing.T) {
		i := newItem(t, 2)

		err := i.DecrementInventory(3)

		require.ErrorIs(t, err, item.ErrInsufficientInventory)
		assert.Equal(t, 2, i.Inventory())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		i := newItem(t, 10)

		require.Error(t, i.DecrementInventory(0))
		require.Error(t, i.DecrementInventory(-1))
		assert.Equal(t, 10, i.Inventory())
	})
}

func TestItem_IncrementInventory(t *testing.T) {
	t.Run("should restore quantity without an upper bound", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Pull Toy", validPrice(t), 1)
		require.NoError(t, err)

		require.NoError(t, i.IncrementInventory(1000))
		assert.Equal(t, 1001, i.Inventory())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Pull Toy", validPrice(t), 1)
		require.NoError(t, err)

		require.Error(t, i.IncrementInventory(0))
		assert.Equal(t, 1, i.Inventory())
	})
}

func TestItem_ChangePrice(t *testing.T) {
	t.Run("should update the listing price", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Pull Toy", validPrice(t), 1)
		require.NoError(t, err)

		newPrice, _ := kernel.NewMoney(250, 0)
		require.NoError(t, i.ChangePrice(newPrice))
		assert.True(t, i.Price().IsEqual(newPrice))
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Pull Toy", validPrice(t), 1)
		require.NoError(t, err)

		var price kernel.Money
		require.Error(t, i.ChangePrice(price))
	})
}
