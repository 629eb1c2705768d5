package memory

import (
	"context"
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback without a prior Begin.
var ErrNoTransaction = errors.New("no active transaction")

// staged is a pending write. base is the committed version the write was
// computed from; isNew marks an insert.
type staged[T any] struct {
	isNew bool
	base  int64
	row   T
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store, publisher: publisher}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateMemory()
}

// CreateMemory is Create without the interface conversion.
func (f *UnitOfWorkFactory) CreateMemory() *UnitOfWork {
	return &UnitOfWork{store: f.store, publisher: f.publisher}
}

// UnitOfWork stages writes between Begin and Commit and applies them to the
// Store atomically. Without Begin every write is applied at once.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher

	active   bool
	orders   map[kernel.UUID]staged[orderRow]
	payments map[kernel.UUID]staged[paymentRow]
	partners map[kernel.UUID]staged[partnerRow]
	tracked  []kernel.EventSource
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.active = true
	uow.reset()
	return nil
}

// Commit re-checks every staged version against the Store, applies the
// writes when all still match and publishes the tracked events afterwards.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false

	if err := uow.apply(); err != nil {
		uow.discardEvents()
		uow.reset()
		return err
	}
	events := uow.drainEvents()
	uow.reset()

	uow.publish(ctx, events)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	uow.discardEvents()
	uow.reset()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) PaymentRepository() ports.PaymentRepository {
	return &PaymentRepository{uow: uow}
}

func (uow *UnitOfWork) PartnerRepository() ports.PartnerRepository {
	return &PartnerRepository{uow: uow}
}

func (uow *UnitOfWork) reset() {
	uow.orders = make(map[kernel.UUID]staged[orderRow])
	uow.payments = make(map[kernel.UUID]staged[paymentRow])
	uow.partners = make(map[kernel.UUID]staged[partnerRow])
	uow.tracked = nil
}

func (uow *UnitOfWork) track(aggregate any) {
	if source, ok := aggregate.(kernel.EventSource); ok {
		uow.tracked = append(uow.tracked, source)
	}
}

func (uow *UnitOfWork) discardEvents() {
	for _, source := range uow.tracked {
		source.ClearDomainEvents()
	}
}

// drainEvents collects the events of every tracked aggregate and clears
// them on the aggregates.
func (uow *UnitOfWork) drainEvents() []kernel.DomainEvent {
	var events []kernel.DomainEvent
	for _, source := range uow.tracked {
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}
	return events
}

func (uow *UnitOfWork) publish(ctx context.Context, events []kernel.DomainEvent) {
	if len(events) > 0 && uow.publisher != nil {
		uow.publisher.Publish(ctx, events...)
	}
}

// writeNow applies a single write outside a transaction and publishes its
// events immediately.
func (uow *UnitOfWork) writeNow(ctx context.Context, stage func()) error {
	uow.reset()
	stage()
	if err := uow.apply(); err != nil {
		uow.discardEvents()
		uow.reset()
		return err
	}
	events := uow.drainEvents()
	uow.reset()
	uow.publish(ctx, events)
	return nil
}

func (uow *UnitOfWork) apply() error {
	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := uow.check(); err != nil {
		return err
	}

	for id, w := range uow.orders {
		if w.isNew {
			s.numbers[w.row.snapshot.Number] = id
		}
		s.orders[id] = w.row
	}
	for id, w := range uow.payments {
		s.payments[id] = w.row
	}
	for id, w := range uow.partners {
		s.partners[id] = w.row
	}
	return nil
}

// check must be called with the store lock held.
func (uow *UnitOfWork) check() error {
	s := uow.store

	for id, w := range uow.orders {
		current, exists := s.orders[id]
		switch {
		case w.isNew && exists:
			return errs.NewValueIsInvalidError("order id")
		case w.isNew:
			if _, taken := s.numbers[w.row.snapshot.Number]; taken {
				return errs.NewValueIsInvalidError(order.NumberParam)
			}
		case !exists:
			return errs.NewObjectNotFoundError("order", id.String())
		case current.snapshot.Version != w.base:
			return errs.NewVersionIsInvalidError("order", nil)
		}
	}

	for id, w := range uow.payments {
		current, exists := s.payments[id]
		switch {
		case w.isNew && exists:
			return errs.NewValueIsInvalidError("payment id")
		case w.isNew:
			if s.providerOrderTaken(w.row.snapshot.ProviderOrderID) {
				return errs.NewValueIsInvalidError("provider order id")
			}
		case !exists:
			return errs.NewObjectNotFoundError("payment", id.String())
		case current.snapshot.Version != w.base:
			return errs.NewVersionIsInvalidError("payment", nil)
		}
	}

	for id, w := range uow.partners {
		current, exists := s.partners[id]
		switch {
		case w.isNew && exists:
			return errs.NewValueIsInvalidError("partner id")
		case w.isNew:
		case !exists:
			return errs.NewObjectNotFoundError("partner", id.String())
		case current.version != w.base:
			return errs.NewVersionIsInvalidError("partner", nil)
		}
	}

	return nil
}

func (s *Store) providerOrderTaken(providerOrderID string) bool {
	for _, row := range s.payments {
		if row.snapshot.ProviderOrderID == providerOrderID {
			return true
		}
	}
	return false
}

// stagedOrder returns the order row visible to this unit of work.
func (uow *UnitOfWork) stagedOrder(id kernel.UUID) (orderRow, bool) {
	if w, ok := uow.orders[id]; ok {
		return w.row, true
	}
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	row, ok := uow.store.orders[id]
	return row, ok
}

func (uow *UnitOfWork) stagedPayment(id kernel.UUID) (paymentRow, bool) {
	if w, ok := uow.payments[id]; ok {
		return w.row, true
	}
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	row, ok := uow.store.payments[id]
	return row, ok
}

func (uow *UnitOfWork) stagedPartner(id kernel.UUID) (partnerRow, bool) {
	if w, ok := uow.partners[id]; ok {
		return w.row, true
	}
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	row, ok := uow.store.partners[id]
	return row, ok
}

// visibleOrders merges committed and staged orders.
func (uow *UnitOfWork) visibleOrders() map[kernel.UUID]orderRow {
	uow.store.mu.RLock()
	rows := make(map[kernel.UUID]orderRow, len(uow.store.orders)+len(uow.orders))
	for id, row := range uow.store.orders {
		rows[id] = row
	}
	uow.store.mu.RUnlock()

	for id, w := range uow.orders {
		rows[id] = w.row
	}
	return rows
}

func (uow *UnitOfWork) visiblePayments() map[kernel.UUID]paymentRow {
	uow.store.mu.RLock()
	rows := make(map[kernel.UUID]paymentRow, len(uow.store.payments)+len(uow.payments))
	for id, row := range uow.store.payments {
		rows[id] = row
	}
	uow.store.mu.RUnlock()

	for id, w := range uow.payments {
		rows[id] = w.row
	}
	return rows
}

func (uow *UnitOfWork) visiblePartners() map[kernel.UUID]partnerRow {
	uow.store.mu.RLock()
	rows := make(map[kernel.UUID]partnerRow, len(uow.store.partners)+len(uow.partners))
	for id, row := range uow.store.partners {
		rows[id] = row
	}
	uow.store.mu.RUnlock()

	for id, w := range uow.partners {
		rows[id] = w.row
	}
	return rows
}

func (uow *UnitOfWork) seq() uint64 {
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return uow.store.nextSeq()
}

func restoreOrder(row orderRow) (*order.Order, error) {
	return order.RestoreOrder(row.snapshot)
}

func restorePayment(row paymentRow) (*payment.Payment, error) {
	return payment.RestorePayment(row.snapshot)
}
