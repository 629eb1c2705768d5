// Package queries contains read operations for retrieving system state.
// Queries never mutate: they load aggregates through the read side of the
// repositories, authorize the principal and return snapshots.
package queries

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"
)

// OrderReader is the read half of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
	GetByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error)
	GetByDeliveryPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)
	GetPendingWithoutPartner(ctx context.Context) ([]*order.Order, error)
}

// PaymentReader is the read half of ports.PaymentRepository.
type PaymentReader interface {
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}

// PartnerReader is the read half of ports.PartnerRepository.
type PartnerReader interface {
	GetAll(ctx context.Context) ([]*partner.Partner, error)
}

func snapshots(orders []*order.Order) []order.Snapshot {
	result := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Snapshot())
	}
	return result
}
