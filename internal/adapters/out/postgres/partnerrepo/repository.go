package partnerrepo

import (
	"context"

	"foodies/internal/adapters/out/postgres/dberrors"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberrors.Translate("add partner", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner under the optimistic version check.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("name", "vehicle", "approved", "available", "latitude", "longitude", "version").
		Updates(&dto)
	if result.Error != nil {
		return dberrors.Translate("update partner", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PartnerDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return dberrors.Translate("update partner", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("partner", nil)
	}

	aggregate.CommitVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrors.NotFoundOr("get partner", "partner", id.String(), err)
	}

	return toDomain(dto)
}

func (r *GormPartnerRepository) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dtos).Error; err != nil {
		return nil, dberrors.Translate("list partners", err)
	}

	return toDomainList(dtos)
}

// GetAllFree retrieves approved, available partners that carry no active order.
func (r *GormPartnerRepository) GetAllFree(ctx context.Context) ([]*partner.Partner, error) {
	active := make([]string, 0, len(order.ActiveStatuses()))
	for _, s := range order.ActiveStatuses() {
		active = append(active, s.String())
	}

	var dtos []PartnerDTO
	// Partners without a matching active order come back with a NULL join.
	if err := r.db.WithContext(ctx).
		Table("partners").
		Select("partners.*").
		Joins("LEFT JOIN orders ON partners.id = orders.delivery_partner_id AND orders.status IN ?", active).
		Where("orders.id IS NULL AND partners.approved = ? AND partners.available = ?", true, true).
		Order("partners.created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, dberrors.Translate("list free partners", err)
	}

	return toDomainList(dtos)
}
