package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// For every requested line it snapshots the catalog item's current price
// into a line item, so later repricing never moves the order's total.
// Inventory is not touched at placement; stock is reserved per line item at
// fulfillment time.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning orders and items, since item prices are
// read in the same transaction the order is written in.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// The new order starts in pending status with one line item per requested
// line. A line referencing a nonexistent item fails the whole command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	itemIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		itemIDs = append(itemIDs, line.ItemID())
	}

	items, err := uow.ItemRepository().GetByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}

	itemsByID := make(map[kernel.UUID]*item.Item, len(items))
	for _, it := range items {
		itemsByID[it.ID()] = it
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.ShippingAddress(), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		catalogItem, ok := itemsByID[line.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", line.ItemID().String())
		}

		if _, err = newOrder.AddItem(kernel.NewUUID(), catalogItem, line.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, newOrder)
	return nil
}
