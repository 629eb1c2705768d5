package queries

import (
	"context"

	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
)

// GetUnassignedOrdersQueryHandler returns the assignment queue, oldest
// order first.
type GetUnassignedOrdersQueryHandler struct {
	orders OrderReader
	access services.AccessPolicy
}

func NewGetUnassignedOrdersQueryHandler(orders OrderReader) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{orders: orders, access: services.NewAccessPolicy()}
}

func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.CanListUnassigned(query.Principal()); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetPendingWithoutPartner(ctx)
	if err != nil {
		return nil, err
	}

	return snapshots(orders), nil
}
