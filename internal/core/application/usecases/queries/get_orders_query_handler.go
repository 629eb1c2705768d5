package queries

import (
	"context"
	"fmt"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
)

// GetOrdersQueryHandler lists a participant's orders in insertion order.
// Principals other than ADMIN and SYSTEM may only list their own.
type GetOrdersQueryHandler struct {
	orders OrderReader
	access services.AccessPolicy
}

func NewGetOrdersQueryHandler(orders OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders, access: services.NewAccessPolicy()}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.CanList(query.Principal(), query.Role(), query.SubjectID()); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	switch query.Role() {
	case kernel.RoleCustomer:
		orders, err = h.orders.GetByCustomer(ctx, query.SubjectID())
	case kernel.RoleRestaurant:
		orders, err = h.orders.GetByRestaurant(ctx, query.SubjectID())
	case kernel.RoleDeliveryPartner:
		partnerID, idErr := kernel.UUIDFromString(query.SubjectID())
		if idErr != nil {
			return nil, idErr
		}
		orders, err = h.orders.GetByDeliveryPartner(ctx, partnerID)
	default:
		return nil, fmt.Errorf("orders cannot be listed by %s", query.Role())
	}
	if err != nil {
		return nil, err
	}

	return snapshots(orders), nil
}
