package commands

import (
	"context"

	"marketplace/internal/core/domain/model/item"
)

// CreateItemCommandHandler handles the business logic for adding items to
// the catalog.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item creation operations.
// Requires an ItemUoWFactory for transactional persistence.
func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command.
// Uses transaction to ensure the item is properly persisted or rolled back on error.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	newItem, err := item.NewItem(cmd.ItemID(), cmd.MerchantID(), cmd.Name(), cmd.Price(), cmd.Inventory())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
