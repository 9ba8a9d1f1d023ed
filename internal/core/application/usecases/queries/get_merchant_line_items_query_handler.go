package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMerchantLineItemsQueryHandler reads a merchant's slice of one order as
// a flat SQL projection, skipping aggregate loading since no domain logic
// applies to the result.
type GetMerchantLineItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantLineItemsQueryHandler creates a handler for merchant line
// item queries. Requires a GORM database connection for query execution.
func NewGetMerchantLineItemsQueryHandler(db *gorm.DB) GetMerchantLineItemsQueryHandler {
	return GetMerchantLineItemsQueryHandler{db: db}
}

// Handle executes the query. Rows come back in line item position order,
// so the merchant sees its slice in the order the buyer placed it.
func (h GetMerchantLineItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantLineItemsQuery,
) ([]GetMerchantLineItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// An empty slice must mean "this merchant has no items in the order",
	// not "no such order", so the order's existence is checked first.
	var orderCount int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE id = ?", query.OrderID().Bytes()).
		Scan(&orderCount).Error
	if err != nil {
		return nil, err
	}
	if orderCount == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	lineItems := make([]GetMerchantLineItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.order_id,
			o.status,
			li.item_id,
			i.name,
			li.quantity,
			li.unit_price,
			li.status
		FROM line_items li
		JOIN orders o ON o.id = li.order_id
		JOIN items i ON i.id = li.item_id
		WHERE li.order_id = ? AND li.merchant_id = ?
		ORDER BY li.position
	`, query.OrderID().Bytes(), query.MerchantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineItemID, orderID, itemID uuid.UUID
		var orderStatus, lineStatus int
		var name string
		var quantity int
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&lineItemID,
			&orderID,
			&orderStatus,
			&itemID,
			&name,
			&quantity,
			&unitPrice,
			&lineStatus,
		)
		if err != nil {
			return nil, err
		}

		resp, mapErr := mapMerchantLineItemRow(
			lineItemID, orderID, itemID, orderStatus, lineStatus, name, quantity, unitPrice)
		if mapErr != nil {
			return nil, mapErr
		}

		lineItems = append(lineItems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineItems, nil
}

func mapMerchantLineItemRow(
	lineItemID, orderID, itemID uuid.UUID,
	orderStatus, lineStatus int,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
) (GetMerchantLineItemsQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(lineItemID[:])
	if err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	oID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	iID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	price, err := kernel.MoneyFromDecimal(unitPrice)
	if err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	oStatus := order.Status(orderStatus)
	if err = oStatus.Validate(); err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	liStatus := order.LineItemStatus(lineStatus)
	if err = liStatus.Validate(); err != nil {
		return GetMerchantLineItemsQueryResponse{}, err
	}

	return GetMerchantLineItemsQueryResponse{
		LineItemID:  id,
		OrderID:     oID,
		OrderStatus: oStatus,
		ItemID:      iID,
		ItemName:    name,
		Quantity:    quantity,
		UnitPrice:   price,
		Status:      liStatus,
	}, nil
}
