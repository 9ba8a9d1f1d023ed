package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for line item operations.
var (
	// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrLineItemAlreadyFulfilled guards against double fulfillment of the same line item.
	ErrLineItemAlreadyFulfilled = errors.New("line item is already fulfilled")
	// ErrLineItemNotFulfilled is returned when reverting a line item that was never fulfilled.
	ErrLineItemNotFulfilled = errors.New("line item is not fulfilled")
	// ErrItemMismatch is returned when a fulfillment operation is handed an
	// item other than the one the line item references.
	ErrItemMismatch = errors.New("item does not match line item reference")
)

// LineItemStatus is the fulfillment state of a single line item.
type LineItemStatus int

const (
	// Unfulfilled means the merchant has not yet reserved stock for this line.
	Unfulfilled LineItemStatus = iota
	// Fulfilled means stock has been decremented and the units are reserved.
	Fulfilled
)

// Validate checks that the LineItemStatus is one of the defined values.
func (s LineItemStatus) Validate() error {
	if s != Unfulfilled && s != Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause("line item status",
			fmt.Errorf("%d is not a valid line item status", s))
	}
	return nil
}

// String returns the lowercase status name.
func (s LineItemStatus) String() string {
	switch s {
	case Unfulfilled:
		return "unfulfilled"
	case Fulfilled:
		return "fulfilled"
	default:
		return "unknown"
	}
}

// LineItem is a child entity of the Order aggregate: one item at a quantity,
// with the unit price captured when the order was created. It cannot outlive
// its order and is only mutated through the aggregate root.
//
// The unit price is an immutable snapshot: the referenced item's price may
// change at any time without affecting existing line items. The merchant
// reference is snapshotted for the same reason, so merchant-scoped views
// keep working even while the catalog changes.
type LineItem struct {
	// id uniquely identifies the line item
	id kernel.UUID
	// itemID references the catalog item this line was created from
	itemID kernel.UUID
	// merchantID is the owning merchant of the item, captured at creation
	merchantID kernel.UUID
	// quantity is the number of units ordered (always positive)
	quantity int
	// unitPrice is the item price at order creation time
	unitPrice kernel.Money
	// status tracks whether stock has been reserved for this line
	status LineItemStatus
	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given catalog item, snapshotting
// its current price and owning merchant. Quantity must be positive. New line
// items start Unfulfilled; stock is not touched until Fulfill.
func NewLineItem(id kernel.UUID, catalogItem *item.Item, quantity int) (*LineItem, error) {
	if err := catalogItem.Validate(); err != nil {
		return nil, err
	}

	li := &LineItem{
		status: Unfulfilled,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setID(id),
		li.setItem(catalogItem),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreLineItem reconstructs a LineItem from persistent storage, including
// its fulfillment state and the price snapshot taken at creation.
func RestoreLineItem(
	id kernel.UUID,
	itemID kernel.UUID,
	merchantID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	status LineItemStatus,
) (*LineItem, error) {
	li := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setID(id),
		li.setItemRefs(itemID, merchantID),
		li.setQuantity(quantity),
		li.setUnitPrice(unitPrice),
		li.setStatus(status),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// Validate checks that the LineItem was created through a constructor.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() kernel.UUID {
	return li.id
}

// ItemID returns the identifier of the referenced catalog item.
func (li *LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// MerchantID returns the owning merchant captured at creation.
func (li *LineItem) MerchantID() kernel.UUID {
	return li.merchantID
}

// Quantity returns the number of units ordered.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (li *LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Status returns the fulfillment state.
func (li *LineItem) Status() LineItemStatus {
	return li.status
}

// IsFulfilled reports whether stock is currently reserved for this line.
func (li *LineItem) IsFulfilled() bool {
	return li.status == Fulfilled
}

// Subtotal returns unit price × quantity. Pure; no side effects.
func (li *LineItem) Subtotal() kernel.Money {
	return li.unitPrice.MulQuantity(li.quantity)
}

// Fulfill reserves stock for this line: it decrements the referenced item's
// inventory by the line quantity and marks the line Fulfilled. The item and
// the status change succeed or fail together.
//
// Fails with ErrLineItemAlreadyFulfilled if called twice without an
// intervening Unfulfill (inventory is not decremented again), with
// ErrItemMismatch if handed the wrong item, and with
// item.ErrInsufficientInventory when stock is too low (the line stays
// Unfulfilled).
func (li *LineItem) Fulfill(catalogItem *item.Item) error {
	if li.status == Fulfilled {
		return ErrLineItemAlreadyFulfilled
	}
	if err := li.checkItem(catalogItem); err != nil {
		return err
	}

	if err := catalogItem.DecrementInventory(li.quantity); err != nil {
		return err
	}

	li.status = Fulfilled
	return nil
}

// Unfulfill reverts a fulfilled line: it returns the line quantity to the
// referenced item's inventory and marks the line Unfulfilled. Used by order
// cancellation. Fails with ErrLineItemNotFulfilled when there is nothing to
// revert.
func (li *LineItem) Unfulfill(catalogItem *item.Item) error {
	if li.status != Fulfilled {
		return ErrLineItemNotFulfilled
	}
	if err := li.checkItem(catalogItem); err != nil {
		return err
	}

	if err := catalogItem.IncrementInventory(li.quantity); err != nil {
		return err
	}

	li.status = Unfulfilled
	return nil
}

func (li *LineItem) checkItem(catalogItem *item.Item) error {
	if err := catalogItem.Validate(); err != nil {
		return err
	}
	if !catalogItem.ID().IsEqual(li.itemID) {
		return fmt.Errorf("%w: line item references %s, got %s",
			ErrItemMismatch, li.itemID, catalogItem.ID())
	}
	return nil
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setItem(catalogItem *item.Item) error {
	li.itemID = catalogItem.ID()
	li.merchantID = catalogItem.MerchantID()
	li.unitPrice = catalogItem.Price()
	return nil
}

func (li *LineItem) setItemRefs(itemID, merchantID kernel.UUID) error {
	if err := errors.Join(itemID.Validate(), merchantID.Validate()); err != nil {
		return err
	}
	li.itemID = itemID
	li.merchantID = merchantID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setStatus(status LineItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	li.status = status
	return nil
}
