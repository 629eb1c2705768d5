package kernel

// DomainEvent is a fact recorded by an aggregate while it is mutated. Events
// are collected by the unit of work and published only after commit.
type DomainEvent interface {
	AggregateID() UUID
	EventName() string
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
