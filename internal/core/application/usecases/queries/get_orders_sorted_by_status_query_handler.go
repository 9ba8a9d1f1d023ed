package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// GetOrdersSortedByStatusQueryHandler produces the dashboard order listing.
// It reads full aggregates through the repository because the result needs
// two pieces of domain logic: the status sort priority and the grand total
// recomputed from price snapshots.
type GetOrdersSortedByStatusQueryHandler struct {
	orderRepository ports.OrderRepository
	sorter          services.OrderSorter
}

// NewGetOrdersSortedByStatusQueryHandler creates a handler for the sorted
// dashboard listing.
func NewGetOrdersSortedByStatusQueryHandler(
	orderRepository ports.OrderRepository,
) GetOrdersSortedByStatusQueryHandler {
	return GetOrdersSortedByStatusQueryHandler{
		orderRepository: orderRepository,
		sorter:          services.NewOrderSorter(),
	}
}

// Handle executes the query. Orders come back packaged first, then pending,
// shipped and cancelled; within a status the placement order is kept.
func (h GetOrdersSortedByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSortedByStatusQuery,
) ([]GetOrdersSortedByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := h.sorter.SortByStatus(orders)

	responses := make([]GetOrdersSortedByStatusQueryResponse, 0, len(sorted))
	for _, aggregate := range sorted {
		responses = append(responses, GetOrdersSortedByStatusQueryResponse{
			ID:         aggregate.ID(),
			UserID:     aggregate.UserID(),
			Status:     aggregate.Status(),
			CreatedAt:  aggregate.CreatedAt(),
			GrandTotal: aggregate.GrandTotal(),
		})
	}

	return responses, nil
}
