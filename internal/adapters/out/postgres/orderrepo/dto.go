// Package orderrepo implements order persistence with GORM. An order row
// owns its line item rows; loading an order always preloads them in
// position order so the aggregate sees its lines exactly as placed.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Line items live in their own table and cascade on delete;
// they never outlive the order.
type OrderDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID          `gorm:"type:uuid;index"`
	ShippingAddress ShippingAddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status          int                `gorm:"index"`
	CreatedAt       time.Time
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingAddressDTO represents the embedded shipping destination columns
// within the order table.
type ShippingAddressDTO struct {
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"`
	City    string `gorm:"not null"`
	State   string `gorm:"not null"`
	Zip     string `gorm:"not null"`
}

// LineItemDTO represents one line item row. UnitPrice is the immutable
// snapshot of the item price at order creation; Position keeps the
// placement order of lines within their order.
type LineItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status     int
	Position   int
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lineItems := aggregate.LineItems()
	lineDTOs := make([]LineItemDTO, 0, len(lineItems))
	for position, lineItem := range lineItems {
		lineDTOs = append(lineDTOs, LineItemDTO{
			ID:         lineItem.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			ItemID:     lineItem.ItemID().Bytes(),
			MerchantID: lineItem.MerchantID().Bytes(),
			Quantity:   lineItem.Quantity(),
			UnitPrice:  lineItem.UnitPrice().Decimal(),
			Status:     int(lineItem.Status()),
			Position:   position,
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),
		ShippingAddress: ShippingAddressDTO{
			Name:    aggregate.ShippingAddress().Name(),
			Address: aggregate.ShippingAddress().Address(),
			City:    aggregate.ShippingAddress().City(),
			State:   aggregate.ShippingAddress().State(),
			Zip:     aggregate.ShippingAddress().Zip(),
		},
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		LineItems: lineDTOs,
	}
}

// toDomain reconstructs the order aggregate from a database row and its
// preloaded line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	shippingAddress, err := order.NewShippingAddress(
		dto.ShippingAddress.Name,
		dto.ShippingAddress.Address,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.Zip,
	)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, lineDTO := range dto.LineItems {
		lineItem, lineErr := lineItemToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(id, userID, shippingAddress, order.Status(dto.Status), dto.CreatedAt, lineItems)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.MoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, itemID, merchantID, dto.Quantity, unitPrice, order.LineItemStatus(dto.Status))
}
