package queries

import (
	"context"
	"sort"

	"foodies/internal/core/domain/services"
)

// GetAllPartnersQueryHandler lists delivery partners sorted by name.
// Restaurants see the roster too, since they assign partners manually.
type GetAllPartnersQueryHandler struct {
	partners PartnerReader
	access   services.AccessPolicy
}

func NewGetAllPartnersQueryHandler(partners PartnerReader) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{partners: partners, access: services.NewAccessPolicy()}
}

func (h GetAllPartnersQueryHandler) Handle(ctx context.Context, query GetAllPartnersQuery) ([]PartnerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.CanListUnassigned(query.Principal()); err != nil {
		return nil, err
	}

	partners, err := h.partners.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PartnerView, 0, len(partners))
	for _, p := range partners {
		views = append(views, PartnerView{
			ID:        p.ID().String(),
			Name:      p.Name(),
			Vehicle:   p.Vehicle().String(),
			Approved:  p.IsApproved(),
			Available: p.IsAvailable(),
			Latitude:  p.Location().Latitude(),
			Longitude: p.Location().Longitude(),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Name < views[j].Name
	})

	return views, nil
}
