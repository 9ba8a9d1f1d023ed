package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrPackReadyOrdersCommandIsNotConstructed = errors.New(
	"PackReadyOrdersCommand must be created via NewPackReadyOrdersCommand constructor",
)

// PackReadyOrdersCommand triggers packing of every pending order whose line
// items are all fulfilled. This batch operation backs the periodic packing
// job, catching orders whose last fulfillment happened without an explicit
// pack request.
type PackReadyOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPackReadyOrdersCommand creates a command to pack all ready orders.
// This is a parameterless command that processes every pending order.
func NewPackReadyOrdersCommand() PackReadyOrdersCommand {
	command := PackReadyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *PackReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPackReadyOrdersCommandIsNotConstructed)
}
