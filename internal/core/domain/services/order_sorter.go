package services

import (
	"sort"

	"marketplace/internal/core/domain/model/order"
)

// OrderSorter is a domain service producing the canonical dashboard ordering
// of orders: packaged first (ready to hand off), then pending (awaiting
// fulfillment), then shipped, then cancelled. The ordering lives here rather
// than in a query because merchant and admin views must agree on it.
type OrderSorter struct{}

// NewOrderSorter creates a new OrderSorter instance.
func NewOrderSorter() OrderSorter {
	return OrderSorter{}
}

// SortByStatus returns a new slice with the orders arranged by status
// priority. The sort is stable, so orders sharing a status keep their
// relative order from the input (typically placement order from storage).
// The input slice is not modified.
func (OrderSorter) SortByStatus(orders []*order.Order) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Status().SortPriority() < sorted[j].Status().SortPriority()
	})

	return sorted
}
