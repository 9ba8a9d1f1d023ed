package commands

import (
	"context"
)

// FulfillLineItemCommandHandler handles merchant fulfillment of a single
// line item. The line item's status change and the item's inventory
// decrement are persisted in one transaction, so partial fulfillment
// effects never become visible.
type FulfillLineItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewFulfillLineItemCommandHandler creates a handler for line item
// fulfillment. Requires a UoWFactory spanning orders and items.
func NewFulfillLineItemCommandHandler(uowFactory UoWFactory) FulfillLineItemCommandHandler {
	return FulfillLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment command.
// Fails when the order is not pending, when the line item is already
// fulfilled, or when the item lacks inventory; in every failure case
// nothing is persisted.
func (h *FulfillLineItemCommandHandler) Handle(ctx context.Context, cmd FulfillLineItemCommand) error {
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
	aggregate, err := orderRepo.GetByLineItemID(ctx, cmd.LineItemID())
	if err != nil {
		return err
	}

	lineItem, err := aggregate.LineItem(cmd.LineItemID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	catalogItem, err := itemRepo.Get(ctx, lineItem.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.FulfillLineItem(cmd.LineItemID(), catalogItem); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, catalogItem); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
