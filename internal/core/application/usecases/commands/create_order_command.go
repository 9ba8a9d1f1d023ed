package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order must contain at least one line")
)

// OrderLine is one requested item/quantity pair of a new order.
type OrderLine struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int
}

// NewOrderLine creates a validated item/quantity pair.
func NewOrderLine(itemID kernel.UUID, quantity int) (OrderLine, error) {
	line := OrderLine{}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// ItemID returns the requested catalog item.
func (l OrderLine) ItemID() kernel.UUID {
	return l.itemID
}

// Quantity returns the requested number of units.
func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l *OrderLine) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	l.itemID = itemID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to place a new order: a customer,
// a shipping destination and one line per requested item. Prices are not
// part of the command; they are snapshotted from the catalog when the order
// is created.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	shippingAddress order.ShippingAddress
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Requires valid identifiers, a constructed shipping address and at least
// one order line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	shippingAddress order.ShippingAddress,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() order.ShippingAddress {
	return c.shippingAddress
}

// Lines returns the requested item/quantity pairs.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress order.ShippingAddress) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = lines
	return nil
}
