package orderrepo

import (
	"context"
	"errors"

	"foodies/internal/adapters/out/postgres/dberrors"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause(order.NumberParam, err)
		}
		return dberrors.Translate("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order when the stored version still equals
// aggregate.Version() and bumps the version on success.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return dberrors.Translate("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, aggregate.ID())
	}

	aggregate.CommitVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) conflictOrMissing(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return dberrors.Translate("update order", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewVersionIsInvalidError("order", nil)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberrors.NotFoundOr("get order", "order", id.String(), err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("number = ?", number).Count(&count).Error; err != nil {
		return false, dberrors.Translate("check order number", err)
	}
	return count > 0, nil
}

func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	return r.find(ctx, "list customer orders", "customer_id = ?", customerID)
}

func (r *GormOrderRepository) GetByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error) {
	return r.find(ctx, "list restaurant orders", "restaurant_id = ?", restaurantID)
}

func (r *GormOrderRepository) GetByDeliveryPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	return r.find(ctx, "list partner orders", "delivery_partner_id = ?", partnerID.Bytes())
}

// GetPendingWithoutPartner retrieves unassigned orders that can still take a
// partner, oldest first.
func (r *GormOrderRepository) GetPendingWithoutPartner(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, "list unassigned orders",
		"delivery_partner_id IS NULL AND status IN ?", statusNames(order.AssignableStatuses()))
}

func (r *GormOrderRepository) find(ctx context.Context, op string, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, dberrors.Translate(op, err)
	}

	return toDomainList(dtos)
}
