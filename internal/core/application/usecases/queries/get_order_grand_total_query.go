package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderGrandTotalQueryIsNotConstructed = errors.New(
	"GetOrderGrandTotalQuery must be created via NewGetOrderGrandTotalQuery constructor",
)

// GetOrderGrandTotalQuery retrieves one order's grand total, computed from
// the line items' price snapshots.
type GetOrderGrandTotalQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderGrandTotalQuery creates a query for an order's grand total.
func NewGetOrderGrandTotalQuery(orderID kernel.UUID) (GetOrderGrandTotalQuery, error) {
	query := GetOrderGrandTotalQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderGrandTotalQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderGrandTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderGrandTotalQueryIsNotConstructed)
}

// OrderID returns the order whose total is requested.
func (q GetOrderGrandTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderGrandTotalQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderGrandTotalQueryResponse carries the computed total.
type GetOrderGrandTotalQueryResponse struct {
	OrderID    kernel.UUID
	GrandTotal kernel.Money
}
