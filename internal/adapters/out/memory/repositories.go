package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a UnitOfWork.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.stagedOrder(aggregate.ID()); exists {
		return errs.NewValueIsInvalidError("order id")
	}

	row := orderRow{seq: r.uow.seq(), snapshot: aggregate.Snapshot()}
	stage := func() {
		r.uow.orders[aggregate.ID()] = staged[orderRow]{isNew: true, base: aggregate.Version(), row: row}
		r.uow.track(aggregate)
	}
	if !r.uow.active {
		return r.uow.writeNow(ctx, stage)
	}
	stage()
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	current, exists := r.uow.stagedOrder(aggregate.ID())
	if !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if current.snapshot.Version != aggregate.Version() {
		return errs.NewVersionIsInvalidError("order", nil)
	}

	w, isStaged := r.uow.orders[aggregate.ID()]
	if !isStaged {
		w = staged[orderRow]{base: aggregate.Version()}
	}
	snapshot := aggregate.Snapshot()
	snapshot.Version = aggregate.Version() + 1
	w.row = orderRow{seq: current.seq, snapshot: snapshot}

	stage := func() {
		r.uow.orders[aggregate.ID()] = w
		r.uow.track(aggregate)
	}
	if !r.uow.active {
		if err := r.uow.writeNow(ctx, stage); err != nil {
			return err
		}
	} else {
		stage()
	}

	aggregate.CommitVersion()
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.uow.stagedOrder(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return restoreOrder(row)
}

func (r *OrderRepository) ExistsByNumber(_ context.Context, number string) (bool, error) {
	for _, row := range r.uow.visibleOrders() {
		if row.snapshot.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *OrderRepository) GetByCustomer(_ context.Context, customerID string) ([]*order.Order, error) {
	return r.filter(func(s order.Snapshot) bool { return s.CustomerID == customerID })
}

func (r *OrderRepository) GetByRestaurant(_ context.Context, restaurantID string) ([]*order.Order, error) {
	return r.filter(func(s order.Snapshot) bool { return s.RestaurantID == restaurantID })
}

func (r *OrderRepository) GetByDeliveryPartner(_ context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	id := partnerID.String()
	return r.filter(func(s order.Snapshot) bool { return s.DeliveryPartnerID == id })
}

func (r *OrderRepository) GetPendingWithoutPartner(_ context.Context) ([]*order.Order, error) {
	assignable := statusNames(order.AssignableStatuses())
	return r.filter(func(s order.Snapshot) bool {
		return s.DeliveryPartnerID == "" && slices.Contains(assignable, s.Status)
	})
}

func (r *OrderRepository) filter(keep func(order.Snapshot) bool) ([]*order.Order, error) {
	rows := make([]orderRow, 0)
	for _, row := range r.uow.visibleOrders() {
		if keep(row.snapshot) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := restoreOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// PaymentRepository implements ports.PaymentRepository over a UnitOfWork.
type PaymentRepository struct {
	uow *UnitOfWork
}

func (r *PaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.stagedPayment(aggregate.ID()); exists {
		return errs.NewValueIsInvalidError("payment id")
	}
	for _, row := range r.uow.visiblePayments() {
		if row.snapshot.ProviderOrderID == aggregate.ProviderOrderID() {
			return errs.NewValueIsInvalidError("provider order id")
		}
	}

	row := paymentRow{seq: r.uow.seq(), snapshot: aggregate.Snapshot()}
	stage := func() {
		r.uow.payments[aggregate.ID()] = staged[paymentRow]{isNew: true, base: aggregate.Version(), row: row}
	}
	if !r.uow.active {
		return r.uow.writeNow(ctx, stage)
	}
	stage()
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	current, exists := r.uow.stagedPayment(aggregate.ID())
	if !exists {
		return errs.NewObjectNotFoundError("payment", aggregate.ID().String())
	}
	if current.snapshot.Version != aggregate.Version() {
		return errs.NewVersionIsInvalidError("payment", nil)
	}

	w, isStaged := r.uow.payments[aggregate.ID()]
	if !isStaged {
		w = staged[paymentRow]{base: aggregate.Version()}
	}
	snapshot := aggregate.Snapshot()
	snapshot.Version = aggregate.Version() + 1
	w.row = paymentRow{seq: current.seq, snapshot: snapshot}

	stage := func() { r.uow.payments[aggregate.ID()] = w }
	if !r.uow.active {
		if err := r.uow.writeNow(ctx, stage); err != nil {
			return err
		}
	} else {
		stage()
	}

	aggregate.CommitVersion()
	return nil
}

func (r *PaymentRepository) Get(_ context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.uow.stagedPayment(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("payment", id.String())
	}
	return restorePayment(row)
}

func (r *PaymentRepository) GetByOrder(_ context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	id := orderID.String()
	var latest *paymentRow
	for _, row := range r.uow.visiblePayments() {
		if row.snapshot.OrderID != id {
			continue
		}
		if latest == nil || isLater(row, *latest) {
			candidate := row
			latest = &candidate
		}
	}
	if latest == nil {
		return nil, errs.NewObjectNotFoundError("payment for order", id)
	}
	return restorePayment(*latest)
}

func isLater(a, b paymentRow) bool {
	if !a.snapshot.CreatedAt.Equal(b.snapshot.CreatedAt) {
		return a.snapshot.CreatedAt.After(b.snapshot.CreatedAt)
	}
	return a.seq > b.seq
}

func (r *PaymentRepository) GetByProviderOrderID(_ context.Context, providerOrderID string) (*payment.Payment, error) {
	for _, row := range r.uow.visiblePayments() {
		if row.snapshot.ProviderOrderID == providerOrderID {
			return restorePayment(row)
		}
	}
	return nil, errs.NewObjectNotFoundError("payment", providerOrderID)
}

func (r *PaymentRepository) GetAllPendingCreatedBefore(_ context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	pending := payment.Pending.String()
	rows := make([]paymentRow, 0)
	for _, row := range r.uow.visiblePayments() {
		if row.snapshot.Status == pending && row.snapshot.CreatedAt.Before(cutoff) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].snapshot.CreatedAt.Equal(rows[j].snapshot.CreatedAt) {
			return rows[i].snapshot.CreatedAt.Before(rows[j].snapshot.CreatedAt)
		}
		return rows[i].seq < rows[j].seq
	})

	payments := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		p, err := restorePayment(row)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// PartnerRepository implements ports.PartnerRepository over a UnitOfWork.
type PartnerRepository struct {
	uow *UnitOfWork
}

func (r *PartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.uow.stagedPartner(aggregate.ID()); exists {
		return errs.NewValueIsInvalidError("partner id")
	}

	row := partnerRowOf(aggregate)
	row.seq = r.uow.seq()
	stage := func() {
		r.uow.partners[aggregate.ID()] = staged[partnerRow]{isNew: true, base: aggregate.Version(), row: row}
	}
	if !r.uow.active {
		return r.uow.writeNow(ctx, stage)
	}
	stage()
	return nil
}

func (r *PartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	current, exists := r.uow.stagedPartner(aggregate.ID())
	if !exists {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}
	if current.version != aggregate.Version() {
		return errs.NewVersionIsInvalidError("partner", nil)
	}

	w, isStaged := r.uow.partners[aggregate.ID()]
	if !isStaged {
		w = staged[partnerRow]{base: aggregate.Version()}
	}
	row := partnerRowOf(aggregate)
	row.seq = current.seq
	row.version = aggregate.Version() + 1
	w.row = row

	stage := func() { r.uow.partners[aggregate.ID()] = w }
	if !r.uow.active {
		if err := r.uow.writeNow(ctx, stage); err != nil {
			return err
		}
	} else {
		stage()
	}

	aggregate.CommitVersion()
	return nil
}

func (r *PartnerRepository) Get(_ context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.uow.stagedPartner(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("partner", id.String())
	}
	return row.restore(id)
}

func (r *PartnerRepository) GetAll(_ context.Context) ([]*partner.Partner, error) {
	return r.filter(func(kernel.UUID, partnerRow) bool { return true })
}

// GetAllFree returns eligible partners that carry no active order.
func (r *PartnerRepository) GetAllFree(_ context.Context) ([]*partner.Partner, error) {
	active := statusNames(order.ActiveStatuses())
	busy := make(map[string]bool)
	for _, row := range r.uow.visibleOrders() {
		if row.snapshot.DeliveryPartnerID != "" && slices.Contains(active, row.snapshot.Status) {
			busy[row.snapshot.DeliveryPartnerID] = true
		}
	}

	return r.filter(func(id kernel.UUID, row partnerRow) bool {
		return row.approved && row.available && !busy[id.String()]
	})
}

func (r *PartnerRepository) filter(keep func(kernel.UUID, partnerRow) bool) ([]*partner.Partner, error) {
	type entry struct {
		id  kernel.UUID
		row partnerRow
	}

	entries := make([]entry, 0)
	for id, row := range r.uow.visiblePartners() {
		if keep(id, row) {
			entries = append(entries, entry{id: id, row: row})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].row.seq < entries[j].row.seq })

	partners := make([]*partner.Partner, 0, len(entries))
	for _, e := range entries {
		p, err := e.row.restore(e.id)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
