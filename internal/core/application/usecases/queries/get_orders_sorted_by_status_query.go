// Package queries contains read-only operations of the CQRS architecture.
// Query handlers bypass command-side transaction management and read either
// through repositories (when domain logic shapes the result) or straight
// SQL projections.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersSortedByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersSortedByStatusQuery must be created via NewGetOrdersSortedByStatusQuery constructor",
)

// GetOrdersSortedByStatusQuery retrieves all orders in dashboard order:
// packaged first, then pending, shipped and cancelled. Orders sharing a
// status keep their placement order.
type GetOrdersSortedByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersSortedByStatusQuery creates a query for the sorted dashboard
// listing. This is a parameterless query over all orders.
func NewGetOrdersSortedByStatusQuery() GetOrdersSortedByStatusQuery {
	return GetOrdersSortedByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSortedByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSortedByStatusQueryIsNotConstructed)
}

// GetOrdersSortedByStatusQueryResponse is one order row of the dashboard
// listing. GrandTotal is computed from the line items' price snapshots.
type GetOrdersSortedByStatusQueryResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	Status     order.Status
	CreatedAt  time.Time
	GrandTotal kernel.Money
}
