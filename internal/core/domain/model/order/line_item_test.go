package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, units int64, cents int64, inventory int) *item.Item {
	t.Helper()

	price, err := kernel.NewMoney(units, cents)
	require.NoError(t, err)

	it, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Widget", price, inventory)
	require.NoError(t, err)

	return it
}

func TestNewLineItem(t *testing.T) {
	t.Run("should snapshot price and merchant from catalog item", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)

		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 2)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.ItemID().IsEqual(catalogItem.ID()))
		assert.True(t, li.MerchantID().IsEqual(catalogItem.MerchantID()))
		assert.True(t, li.UnitPrice().IsEqual(catalogItem.Price()))
		assert.Equal(t, 2, li.Quantity())
		assert.Equal(t, order.Unfulfilled, li.Status())
		assert.Equal(t, 32, catalogItem.Inventory())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)

		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 0)

		require.Error(t, err)
		assert.Nil(t, li)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)

		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, -3)

		require.Error(t, err)
		assert.Nil(t, li)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		var invalidID kernel.UUID

		li, err := order.NewLineItem(invalidID, catalogItem, 1)

		require.Error(t, err)
		assert.Nil(t, li)
	})

	t.Run("should fail with nil catalog item", func(t *testing.T) {
		li, err := order.NewLineItem(kernel.NewUUID(), nil, 1)

		require.Error(t, err)
		assert.Nil(t, li)
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("should restore fulfilled line item with price snapshot", func(t *testing.T) {
		id := kernel.NewUUID()
		itemID := kernel.NewUUID()
		merchantID := kernel.NewUUID()
		price, _ := kernel.NewMoney(10, 0)

		li, err := order.RestoreLineItem(id, itemID, merchantID, 3, price, order.Fulfilled)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.ID().IsEqual(id))
		assert.True(t, li.IsFulfilled())
		assert.True(t, li.UnitPrice().IsEqual(price))
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		price, _ := kernel.NewMoney(10, 0)

		li, err := order.RestoreLineItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3, price, order.LineItemStatus(42))

		require.Error(t, err)
		assert.Nil(t, li)
	})
}

func TestLineItemSubtotal(t *testing.T) {
	t.Run("should multiply snapshot price by quantity", func(t *testing.T) {
		catalogItem := newTestItem(t, 10, 0, 50)

		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		assert.Equal(t, "30.00", li.Subtotal().String())
	})

	t.Run("should survive later catalog price changes", func(t *testing.T) {
		catalogItem := newTestItem(t, 10, 0, 50)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		newPrice, _ := kernel.NewMoney(500, 0)
		require.NoError(t, catalogItem.ChangePrice(newPrice))

		assert.Equal(t, "30.00", li.Subtotal().String())
	})
}

func TestLineItemFulfill(t *testing.T) {
	t.Run("should decrement inventory by quantity and mark fulfilled", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		err = li.Fulfill(catalogItem)

		require.NoError(t, err)
		assert.True(t, li.IsFulfilled())
		assert.Equal(t, 29, catalogItem.Inventory())
	})

	t.Run("should fail on double fulfillment without touching inventory", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)
		require.NoError(t, li.Fulfill(catalogItem))

		err = li.Fulfill(catalogItem)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLineItemAlreadyFulfilled)
		assert.Equal(t, 29, catalogItem.Inventory())
	})

	t.Run("should fail on insufficient inventory leaving line unfulfilled", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 2)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		err = li.Fulfill(catalogItem)

		require.Error(t, err)
		assert.ErrorIs(t, err, item.ErrInsufficientInventory)
		assert.False(t, li.IsFulfilled())
		assert.Equal(t, 2, catalogItem.Inventory())
	})

	t.Run("should fail when handed a different item", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		otherItem := newTestItem(t, 100, 0, 32)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		err = li.Fulfill(otherItem)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemMismatch)
		assert.Equal(t, 32, otherItem.Inventory())
	})
}

func TestLineItemUnfulfill(t *testing.T) {
	t.Run("should return quantity to inventory and reset status", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)
		require.NoError(t, li.Fulfill(catalogItem))

		err = li.Unfulfill(catalogItem)

		require.NoError(t, err)
		assert.False(t, li.IsFulfilled())
		assert.Equal(t, 32, catalogItem.Inventory())
	})

	t.Run("should fail when line was never fulfilled", func(t *testing.T) {
		catalogItem := newTestItem(t, 100, 0, 32)
		li, err := order.NewLineItem(kernel.NewUUID(), catalogItem, 3)
		require.NoError(t, err)

		err = li.Unfulfill(catalogItem)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLineItemNotFulfilled)
		assert.Equal(t, 32, catalogItem.Inventory())
	})
}
