package order

import (
	"time"

	"foodies/internal/core/domain/model/kernel"
)

// Labels carried by Changed events that are not order statuses.
const (
	LabelAssigned          = "ASSIGNED"
	LabelPaid              = "PAID"
	LabelPartiallyRefunded = "PARTIALLY_REFUNDED"
)

// Changed is recorded on creation and on every status, payment or
// assignment change. Label is the new status name or one of the Label
// constants; Order is the state right after the change.
type Changed struct {
	OrderID    kernel.UUID
	Label      string
	Order      Snapshot
	OccurredAt time.Time
}

func (e Changed) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e Changed) EventName() string {
	return "order.changed"
}

// LocationChanged is recorded when the live delivery position moves.
type LocationChanged struct {
	OrderID    kernel.UUID
	Latitude   float64
	Longitude  float64
	OccurredAt time.Time
}

func (e LocationChanged) AggregateID() kernel.UUID {
	return e.OrderID
}

func (e LocationChanged) EventName() string {
	return "order.location_changed"
}
