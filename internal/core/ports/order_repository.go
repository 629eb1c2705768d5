// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, the payment provider, the event
// publisher and the per-key locker.
package ports

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List methods return orders in insertion order.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and its number must not be taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write only succeeds when the stored version equals aggregate.Version();
	// otherwise errs.VersionIsInvalidError is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByNumber reports whether an order number is already taken.
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)
	GetByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error)
	GetByDeliveryPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// GetPendingWithoutPartner retrieves orders that have no delivery partner
	// and are still in an assignable status (PENDING through READY_FOR_PICKUP).
	// The oldest order comes first.
	GetPendingWithoutPartner(ctx context.Context) ([]*order.Order, error)
}
