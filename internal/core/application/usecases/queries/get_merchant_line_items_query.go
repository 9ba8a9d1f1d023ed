package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetMerchantLineItemsQueryIsNotConstructed = errors.New(
	"GetMerchantLineItemsQuery must be created via NewGetMerchantLineItemsQuery constructor",
)

// GetMerchantLineItemsQuery retrieves a merchant's slice of one order:
// only the line items whose item belongs to that merchant, in placement
// order. Orders are shared across merchants, so each merchant dashboard
// sees just its own rows.
type GetMerchantLineItemsQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	merchantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantLineItemsQuery creates a query for a merchant's line items
// within a single order.
func NewGetMerchantLineItemsQuery(orderID, merchantID kernel.UUID) (GetMerchantLineItemsQuery, error) {
	query := GetMerchantLineItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		query.setOrderID(orderID),
		query.setMerchantID(merchantID),
	)
	if err != nil {
		return GetMerchantLineItemsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantLineItemsQueryIsNotConstructed)
}

// OrderID returns the order whose line items are requested.
func (q GetMerchantLineItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// MerchantID returns the merchant whose line items are requested.
func (q GetMerchantLineItemsQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

func (q *GetMerchantLineItemsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetMerchantLineItemsQuery) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	q.merchantID = merchantID
	return nil
}

// GetMerchantLineItemsQueryResponse is one line item row of the merchant
// fulfillment queue. UnitPrice is the snapshot taken when the order was
// placed, not the item's current price.
type GetMerchantLineItemsQueryResponse struct {
	LineItemID  kernel.UUID
	OrderID     kernel.UUID
	OrderStatus order.Status
	ItemID      kernel.UUID
	ItemName    string
	Quantity    int
	UnitPrice   kernel.Money
	Status      order.LineItemStatus
}
