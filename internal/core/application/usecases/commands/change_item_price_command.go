package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrChangeItemPriceCommandIsNotConstructed = errors.New(
	"ChangeItemPriceCommand must be created via NewChangeItemPriceCommand constructor",
)

// ChangeItemPriceCommand represents a request to reprice a catalog item.
// Existing line items keep the price they were ordered at; only future
// orders see the new price.
type ChangeItemPriceCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeItemPriceCommand creates a command to change an item's price.
func NewChangeItemPriceCommand(itemID kernel.UUID, price kernel.Money) (ChangeItemPriceCommand, error) {
	priceCommand := ChangeItemPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		priceCommand.setItemID(itemID),
		priceCommand.setPrice(price),
	); err != nil {
		return ChangeItemPriceCommand{}, err
	}

	return priceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemPriceCommandIsNotConstructed)
}

// ItemID returns the item to reprice.
func (c ChangeItemPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Price returns the new unit price.
func (c ChangeItemPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *ChangeItemPriceCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemPriceCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
