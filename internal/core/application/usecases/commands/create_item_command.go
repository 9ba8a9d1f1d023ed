package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("name is required")
	ErrInventoryIsInvalid = errors.New("inventory must not be negative")
)

// CreateItemCommand represents a request to add a new item to a merchant's
// catalog with its starting price and inventory level.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	merchantID kernel.UUID
	name       string
	price      kernel.Money
	inventory  int

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a new catalog item.
// Validates identifiers, requires a non-empty name and a valid price, and
// allows zero inventory for items listed before stock arrives.
func NewCreateItemCommand(
	itemID kernel.UUID,
	merchantID kernel.UUID,
	name string,
	price kernel.Money,
	inventory int,
) (CreateItemCommand, error) {
	itemCommand := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setMerchantID(merchantID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setInventory(inventory),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// MerchantID returns the owning merchant.
func (c CreateItemCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Name returns the item display name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Price returns the starting unit price.
func (c CreateItemCommand) Price() kernel.Money {
	return c.price
}

// Inventory returns the starting inventory level.
func (c CreateItemCommand) Inventory() int {
	return c.inventory
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateItemCommand) setInventory(inventory int) error {
	if inventory < 0 {
		return ErrInventoryIsInvalid
	}

	c.inventory = inventory
	return nil
}
