// Package memory is an in-process implementation of the repositories and the
// unit of work. It keeps snapshots, never live aggregates, so every Get
// returns an independent copy and a failed unit of work leaves no trace.
//
// It backs STORAGE_DRIVER=memory and the end-to-end tests.
package memory

import (
	"sync"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"
)

type orderRow struct {
	seq      uint64
	snapshot order.Snapshot
}

type paymentRow struct {
	seq      uint64
	snapshot payment.Snapshot
}

type partnerRow struct {
	seq       uint64
	name      string
	vehicle   partner.Vehicle
	approved  bool
	available bool
	location  kernel.Location
	version   int64
}

// Store holds the committed state shared by every unit of work created from
// the same factory.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	orders   map[kernel.UUID]orderRow
	numbers  map[string]kernel.UUID
	payments map[kernel.UUID]paymentRow
	partners map[kernel.UUID]partnerRow
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]orderRow),
		numbers:  make(map[string]kernel.UUID),
		payments: make(map[kernel.UUID]paymentRow),
		partners: make(map[kernel.UUID]partnerRow),
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func partnerRowOf(p *partner.Partner) partnerRow {
	return partnerRow{
		name:      p.Name(),
		vehicle:   p.Vehicle(),
		approved:  p.IsApproved(),
		available: p.IsAvailable(),
		location:  p.Location(),
		version:   p.Version(),
	}
}

func (r partnerRow) restore(id kernel.UUID) (*partner.Partner, error) {
	return partner.RestorePartner(id, r.name, r.vehicle, r.approved, r.available, r.location, r.version)
}
