package ports

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
)

// EventPublisher hands committed domain events to the notification layer.
// Publish must not block on slow consumers and never fails the caller;
// delivery problems are logged by the implementation.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent)
}
