package ports

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partners.
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.Partner) error
	Update(ctx context.Context, aggregate *partner.Partner) error
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAll returns every partner in insertion order.
	GetAll(ctx context.Context) ([]*partner.Partner, error)

	// GetAllFree retrieves partners that can take a new order right now.
	//
	// Business Rules:
	//   - the partner is approved and available
	//   - no order in PENDING..OUT_FOR_DELIVERY is assigned to the partner
	//
	// Partners are returned in insertion order, which FIFOStrategy relies on.
	GetAllFree(ctx context.Context) ([]*partner.Partner, error)
}
