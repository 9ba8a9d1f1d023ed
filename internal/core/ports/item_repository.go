package ports

import (
	"context"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new item. The item must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item, including inventory
	// adjustments made during fulfillment and cancellation.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetByIDs retrieves the items with the given identifiers in one
	// round trip. Order creation and cancellation resolve all referenced
	// items at once. Missing identifiers are simply absent from the
	// result; callers decide whether absence is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error)
}
