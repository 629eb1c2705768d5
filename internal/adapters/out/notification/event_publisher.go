package notification

import (
	"context"
	"fmt"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/logger"

	"go.uber.org/zap"
)

// DeliveryPosition is the payload of a DELIVERY_UPDATE envelope.
type DeliveryPosition struct {
	OrderID   string  `json:"orderId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPublisher implements ports.EventPublisher on top of a Bus.
type EventPublisher struct {
	bus *Bus
	log *zap.Logger
}

func NewEventPublisher(bus *Bus, log *zap.Logger) *EventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventPublisher{bus: bus, log: log}
}

// Publish maps order events to envelopes. Unknown events are skipped.
func (p *EventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) {
	for _, event := range events {
		switch e := event.(type) {
		case order.Changed:
			p.bus.Publish(TopicOrderUpdates, e.OrderID.String(), Envelope{
				Type:      OrderUpdate,
				Message:   fmt.Sprintf("Order %s status updated to %s", e.OrderID, e.Label),
				Payload:   e.Order,
				Timestamp: e.OccurredAt,
			})
		case order.LocationChanged:
			p.bus.Publish(TopicDeliveryUpdates, e.OrderID.String(), Envelope{
				Type:    DeliveryUpdate,
				Message: fmt.Sprintf("Delivery location updated for order %s", e.OrderID),
				Payload: DeliveryPosition{
					OrderID:   e.OrderID.String(),
					Latitude:  e.Latitude,
					Longitude: e.Longitude,
				},
				Timestamp: e.OccurredAt,
			})
		default:
			logger.FromCtx(ctx, p.log).Debug("no notification for event",
				zap.String("event", event.EventName()),
				zap.String("aggregate_id", event.AggregateID().String()),
			)
		}
	}
}
