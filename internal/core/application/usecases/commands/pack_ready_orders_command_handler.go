package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// PackReadyOrdersCommandHandler sweeps all pending orders and packs those
// whose line items are fully fulfilled. Orders that are not ready are left
// untouched. All transitions happen in one transaction; events for packed
// orders are published after commit.
type PackReadyOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPackReadyOrdersCommandHandler creates a handler for the packing sweep.
func NewPackReadyOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PackReadyOrdersCommandHandler {
	return PackReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the packing sweep command.
func (h *PackReadyOrdersCommandHandler) Handle(ctx context.Context, cmd PackReadyOrdersCommand) error {
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
	pending, err := orderRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	packed := make([]*order.Order, 0, len(pending))
	for _, aggregate := range pending {
		if !aggregate.Pack() {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		packed = append(packed, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range packed {
		publishStatusChanged(ctx, h.publisher, h.logger, aggregate)
	}

	return nil
}
