package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation. Every fulfilled
// line item returns its quantity to the referenced item's inventory; the
// order, its line items and every touched item are persisted in one
// transaction so the restock is all-or-nothing.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation.
// Requires a UoWFactory spanning orders and items.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Fails when the order has already shipped or was already cancelled; in
// that case no inventory moves.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	itemIDs := make([]kernel.UUID, 0, len(aggregate.LineItems()))
	for _, lineItem := range aggregate.LineItems() {
		if lineItem.IsFulfilled() {
			itemIDs = append(itemIDs, lineItem.ItemID())
		}
	}

	itemRepo := uow.ItemRepository()
	items, err := itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(items); err != nil {
		return err
	}

	for _, catalogItem := range items {
		if err = itemRepo.Update(ctx, catalogItem); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, aggregate)
	return nil
}
