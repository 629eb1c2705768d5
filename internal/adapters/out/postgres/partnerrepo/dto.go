// Package partnerrepo persists delivery partners.
package partnerrepo

import (
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting delivery partners.
type PartnerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:128"`
	Vehicle   string    `gorm:"size:16"`
	Approved  bool      `gorm:"index:idx_partners_eligible"`
	Available bool      `gorm:"index:idx_partners_eligible"`
	Latitude  float64
	Longitude float64
	Version   int64
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Vehicle:   aggregate.Vehicle().String(),
		Approved:  aggregate.IsApproved(),
		Available: aggregate.IsAvailable(),
		Latitude:  aggregate.Location().Latitude(),
		Longitude: aggregate.Location().Longitude(),
		Version:   aggregate.Version(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := partner.ParseVehicle(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, vehicle, dto.Approved, dto.Available, loc, dto.Version)
}

func toDomainList(dtos []PartnerDTO) ([]*partner.Partner, error) {
	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}
