package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// PackOrderCommandHandler handles packing a single order. Packing is a
// speculative operation: an order that is not ready (still has unfulfilled
// line items, or already left pending) is left untouched without error, so
// callers can attempt a pack after every fulfillment.
type PackOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPackOrderCommandHandler creates a handler for packing operations.
func NewPackOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the pack command. Persists and publishes only when the
// order actually transitioned to packaged.
func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) error {
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

	if !aggregate.Pack() {
		return nil
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
