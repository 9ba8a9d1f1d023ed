package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrLineItemNotFound is returned when an operation references a line
	// item that does not belong to this order.
	ErrLineItemNotFound = errors.New("line item not found in order")
	// ErrOrderIsNotPending is returned when mutating line items of an order
	// that has left the pending state.
	ErrOrderIsNotPending = errors.New("order is not pending")
)

// Order is the aggregate root for fulfillment. It owns its line items
// exclusively (they cannot outlive the order), carries the shipping
// destination, and is the only place status transitions happen.
//
// Invariants:
//   - Status is Packaged only when every line item is Fulfilled
//   - Line item unit prices never change after creation
//   - Cancellation restores exactly the fulfilled quantities to inventory
//     and resets every line item, atomically
//
// Any operation that touches both a line item and an item's inventory is a
// method on this aggregate so the two mutations cannot be separated.
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// userID references the customer that placed the order
	userID kernel.UUID
	// shippingAddress is the validated delivery destination
	shippingAddress ShippingAddress
	// status is the current state in the order lifecycle
	status Status
	// createdAt is when the order was placed
	createdAt time.Time
	// lineItems are the fulfillment units, in placement order
	lineItems []*LineItem
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates an empty Order in Pending status. Line items are added
// with AddItem before the order is persisted; an order placed from a cart
// gets one line item per distinct cart item.
func NewOrder(id kernel.UUID, userID kernel.UUID, shippingAddress ShippingAddress, createdAt time.Time) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setShippingAddress(shippingAddress),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status and line items in their persisted order.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddress ShippingAddress,
	status Status,
	createdAt time.Time,
	lineItems []*LineItem,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setShippingAddress(shippingAddress),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks that the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the customer that placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() ShippingAddress {
	return o.shippingAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// LineItems returns the order's line items in placement order. The slice is
// a copy to keep external code from reordering the aggregate's state.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// LineItem finds a line item of this order by its identifier.
func (o *Order) LineItem(lineItemID kernel.UUID) (*LineItem, error) {
	for _, li := range o.lineItems {
		if li.ID().IsEqual(lineItemID) {
			return li, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLineItemNotFound, lineItemID)
}

// AddItem appends a line item for the given catalog item, snapshotting its
// current price and owning merchant. Only pending orders accept new lines.
func (o *Order) AddItem(lineItemID kernel.UUID, catalogItem *item.Item, quantity int) (*LineItem, error) {
	if o.status != Pending {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderIsNotPending, o.status)
	}

	li, err := NewLineItem(lineItemID, catalogItem, quantity)
	if err != nil {
		return nil, err
	}

	o.lineItems = append(o.lineItems, li)
	return li, nil
}

// GrandTotal sums subtotal over all line items. It is recomputed on demand
// from the price snapshots, so later catalog price changes never move it.
func (o *Order) GrandTotal() kernel.Money {
	total, _ := kernel.NewMoney(0, 0)
	for _, li := range o.lineItems {
		total = total.Add(li.Subtotal())
	}
	return total
}

// MerchantItems returns this order's line items owned by the given
// merchant, preserving the original line item order. Merchant dashboards
// use it to show only their slice of a shared order.
func (o *Order) MerchantItems(merchantID kernel.UUID) []*LineItem {
	out := make([]*LineItem, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if li.MerchantID().IsEqual(merchantID) {
			out = append(out, li)
		}
	}
	return out
}

// FulfillLineItem reserves stock for one line item: the referenced item's
// inventory is decremented by the line quantity and the line is marked
// Fulfilled, as one in-memory mutation. The caller persists the order and
// the item in the same transaction.
//
// Only pending orders can be fulfilled against. Double fulfillment fails
// with ErrLineItemAlreadyFulfilled without touching inventory again.
func (o *Order) FulfillLineItem(lineItemID kernel.UUID, catalogItem *item.Item) error {
	if o.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrOrderIsNotPending, o.status)
	}

	li, err := o.LineItem(lineItemID)
	if err != nil {
		return err
	}

	return li.Fulfill(catalogItem)
}

// CanPack reports whether the order is ready to transition to Packaged:
// status is Pending and every line item is Fulfilled.
func (o *Order) CanPack() bool {
	if o.status != Pending {
		return false
	}
	for _, li := range o.lineItems {
		if !li.IsFulfilled() {
			return false
		}
	}
	return len(o.lineItems) > 0
}

// Pack transitions a ready order from Pending to Packaged and reports
// whether the transition happened. When the order is not ready the status
// is left unchanged and Pack returns false; this is a deliberate non-error
// so that pack attempts are safe to call speculatively.
func (o *Order) Pack() bool {
	if !o.CanPack() {
		return false
	}

	newStatus, err := o.status.Pack()
	if err != nil {
		return false
	}

	o.status = newStatus
	return true
}

// Ship transitions a packaged order to Shipped. Shipping is triggered by
// the carrier integration outside this core.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order and reverses its fulfillment progress: every
// fulfilled line item returns its quantity to the referenced item's
// inventory and resets to Unfulfilled, then the order becomes Cancelled.
//
// items must contain the catalog item for every currently fulfilled line;
// the whole set is checked before any state is touched, so a missing item
// means no line is reverted and no status changes (all-or-nothing). The
// caller persists the order and every touched item in one transaction.
//
// Cancellation is allowed from Pending and Packaged. Shipped orders cannot
// be cancelled, and Cancelled is terminal.
func (o *Order) Cancel(items []*item.Item) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*item.Item, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		byID[it.ID()] = it
	}

	// Resolve every fulfilled line's item before mutating anything, so a
	// missing item leaves the whole aggregate untouched.
	fulfilledLines := make([]*LineItem, 0, len(o.lineItems))
	resolved := make([]*item.Item, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if !li.IsFulfilled() {
			continue
		}
		it, ok := byID[li.ItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("item", li.ItemID().String())
		}
		fulfilledLines = append(fulfilledLines, li)
		resolved = append(resolved, it)
	}

	for i, li := range fulfilledLines {
		if err := li.Unfulfill(resolved[i]); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setShippingAddress(shippingAddress ShippingAddress) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = lineItems
	return nil
}
