package ports

import (
	"context"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment. The provider order id must be unique.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes with the same optimistic version check as
	// OrderRepository.Update.
	Update(ctx context.Context, aggregate *payment.Payment) error

	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrder returns the most recently created payment of an order, or
	// errs.ObjectNotFoundError when the order has none.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	GetByProviderOrderID(ctx context.Context, providerOrderID string) (*payment.Payment, error)

	// GetAllPendingCreatedBefore returns PENDING payments created strictly
	// before cutoff, oldest first.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
