package commands

import (
	"context"
)

// ChangeItemPriceCommandHandler handles catalog repricing. Price snapshots
// on existing line items are untouched; the change only affects orders
// placed after it.
type ChangeItemPriceCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewChangeItemPriceCommandHandler creates a handler for item repricing.
func NewChangeItemPriceCommandHandler(uowFactory ItemUoWFactory) ChangeItemPriceCommandHandler {
	return ChangeItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the repricing command.
func (h *ChangeItemPriceCommandHandler) Handle(ctx context.Context, cmd ChangeItemPriceCommand) error {
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

	itemRepo := uow.ItemRepository()
	catalogItem, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = catalogItem.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, catalogItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
