package queries

import (
	"context"

	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
)

// GetOrderQueryHandler returns an order to the parties involved in it.
type GetOrderQueryHandler struct {
	orders OrderReader
	access services.AccessPolicy
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, access: services.NewAccessPolicy()}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.AuthorizationError when the principal may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = h.access.CanView(query.Principal(), o); err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
