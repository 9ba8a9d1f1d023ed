// Package itemrepo implements catalog item persistence with GORM, mapping
// between the Item aggregate and its relational representation.
package itemrepo

import (
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting catalog items.
// Price is stored as numeric to keep cent precision; inventory is a plain
// unit count.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Inventory  int
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item aggregate to its database representation.
func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:         aggregate.ID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		Name:       aggregate.Name(),
		Price:      aggregate.Price().Decimal(),
		Inventory:  aggregate.Inventory(),
	}
}

// toDomain reconstructs the item aggregate from a database row.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, merchantID, dto.Name, price, dto.Inventory)
}
