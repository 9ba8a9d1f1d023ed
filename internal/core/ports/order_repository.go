package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their line items; loading an order always brings
// its full line item set in placement order.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including its line items' fulfillment state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLineItemID retrieves the order that owns the given line item.
	// Merchant fulfillment requests address line items directly.
	GetByLineItemID(ctx context.Context, lineItemID kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, oldest first. Dashboards apply the
	// status sort on top of this placement ordering.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInPendingStatus retrieves all orders still awaiting
	// fulfillment. Used by the packing job to find pack candidates.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}
