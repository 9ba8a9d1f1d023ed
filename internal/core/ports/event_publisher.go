package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderStatusChangedEvent notifies downstream consumers (notifications,
// analytics) that an order moved to a new status.
type OrderStatusChangedEvent struct {
	OrderID    kernel.UUID
	Status     order.Status
	OccurredAt time.Time
}

// OrderEventPublisher publishes order status changes to the message broker.
// Publishing happens after the owning transaction commits; a publish failure
// must not roll the business change back.
type OrderEventPublisher interface {
	// PublishOrderStatusChanged sends a status change event.
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
