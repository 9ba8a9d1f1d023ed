package item

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for item operations.
var (
	// ErrNameIsRequired is returned when attempting to create an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrInsufficientInventory is returned when a fulfillment attempt asks for
	// more units than the item currently has in stock.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// Item represents a merchant's listing in the marketplace catalog. It is an
// aggregate root that owns the item's price and its inventory ledger.
//
// Inventory is the number of units currently available for fulfillment. It
// is mutated only through DecrementInventory and IncrementInventory, which
// are invoked by line item fulfillment and cancellation; nothing else in the
// system touches stock. The ledger invariant is that inventory equals the
// original stock minus the quantities currently fulfilled against the item,
// and it never goes negative.
//
// Price is the current listing price. Line items snapshot it at order
// creation, so changing it later never affects existing orders.
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// merchantID references the merchant that owns and fulfills this item
	merchantID kernel.UUID
	// name is the listing title shown to shoppers
	name string
	// price is the current listing price
	price kernel.Money
	// inventory is the number of units available for fulfillment
	inventory int
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new Item with the given identity, owning merchant, name,
// price and starting inventory. Inventory must be non-negative; all other
// parameters are validated by their value objects. Validation failures are
// aggregated with errors.Join.
func NewItem(id kernel.UUID, merchantID kernel.UUID, name string, price kernel.Money, inventory int) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setMerchantID(merchantID),
		item.setName(name),
		item.setPrice(price),
		item.setInventory(inventory),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage. The restored
// item behaves identically to one created through NewItem.
func RestoreItem(id kernel.UUID, merchantID kernel.UUID, name string, price kernel.Money, inventory int) (*Item, error) {
	return NewItem(id, merchantID, name, price, inventory)
}

// Validate checks that the Item was created through NewItem. The zero value
// fails this check.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MerchantID returns the identifier of the merchant that owns the item.
func (i *Item) MerchantID() kernel.UUID {
	return i.merchantID
}

// Name returns the listing title.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current listing price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Inventory returns the number of units currently available.
func (i *Item) Inventory() int {
	return i.inventory
}

// DecrementInventory reserves quantity units of stock for fulfillment.
// Returns ErrInsufficientInventory (wrapped with the shortfall detail) when
// quantity exceeds the available units; stock is left untouched in that
// case. Quantity must be positive.
func (i *Item) DecrementInventory(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if quantity > i.inventory {
		return fmt.Errorf("%w: item %s has %d units, %d requested",
			ErrInsufficientInventory, i.id, i.inventory, quantity)
	}

	i.inventory -= quantity
	return nil
}

// IncrementInventory returns quantity units of stock to the ledger, e.g.
// when a fulfilled line item is reverted by cancellation. There is no upper
// bound. Quantity must be positive.
func (i *Item) IncrementInventory(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.inventory += quantity
	return nil
}

// ChangePrice updates the listing price. Existing line items keep the unit
// price they snapshotted at order creation.
func (i *Item) ChangePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	i.merchantID = merchantID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setInventory(inventory int) error {
	if inventory < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventory",
			fmt.Errorf("%d is negative", inventory))
	}
	i.inventory = inventory
	return nil
}
