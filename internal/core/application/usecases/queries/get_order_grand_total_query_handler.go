package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderGrandTotalQueryHandler computes an order's grand total in SQL
// from the persisted price snapshots. An order with no line items totals
// zero; a nonexistent order is an error.
type GetOrderGrandTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderGrandTotalQueryHandler creates a handler for grand total
// queries. Requires a GORM database connection for query execution.
func NewGetOrderGrandTotalQueryHandler(db *gorm.DB) GetOrderGrandTotalQueryHandler {
	return GetOrderGrandTotalQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderGrandTotalQueryHandler) Handle(
	ctx context.Context,
	query GetOrderGrandTotalQuery,
) (GetOrderGrandTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderGrandTotalQueryResponse{}, err
	}

	var total decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(li.unit_price * li.quantity), 0)
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.id
	`, query.OrderID().Bytes()).Row().Scan(&total)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return GetOrderGrandTotalQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderGrandTotalQueryResponse{}, err
	}

	grandTotal, err := kernel.MoneyFromDecimal(total)
	if err != nil {
		return GetOrderGrandTotalQueryResponse{}, err
	}

	return GetOrderGrandTotalQueryResponse{
		OrderID:    query.OrderID(),
		GrandTotal: grandTotal,
	}, nil
}
