package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// publishStatusChanged notifies the broker about an order's new status.
// Called after the owning transaction has committed; a publish failure is
// logged and swallowed so that it never undoes the business change.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
) {
	event := ports.OrderStatusChangedEvent{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
}
