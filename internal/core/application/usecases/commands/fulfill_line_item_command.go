package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrFulfillLineItemCommandIsNotConstructed = errors.New(
	"FulfillLineItemCommand must be created via NewFulfillLineItemCommand constructor",
)

// FulfillLineItemCommand represents a merchant's request to fulfill one
// line item of an order, reserving stock for it.
type FulfillLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFulfillLineItemCommand creates a command to fulfill a line item.
func NewFulfillLineItemCommand(lineItemID kernel.UUID) (FulfillLineItemCommand, error) {
	fulfillCommand := FulfillLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setLineItemID(lineItemID); err != nil {
		return FulfillLineItemCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillLineItemCommand) Validate() error {
	return c.guard.Validate(ErrFulfillLineItemCommandIsNotConstructed)
}

// LineItemID returns the line item to fulfill.
func (c FulfillLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c *FulfillLineItemCommand) setLineItemID(lineItemID kernel.UUID) error {
	if err := lineItemID.Validate(); err != nil {
		return err
	}

	c.lineItemID = lineItemID
	return nil
}
