package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand represents a request to move a fully fulfilled order to
// packaged status.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command to pack an order.
func NewPackOrderCommand(orderID kernel.UUID) (PackOrderCommand, error) {
	packCommand := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := packCommand.setOrderID(orderID); err != nil {
		return PackOrderCommand{}, err
	}

	return packCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// OrderID returns the order to pack.
func (c PackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PackOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
