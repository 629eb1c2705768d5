// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Line items and tracking notes are stored as JSON columns; everything that
// is filtered on is a plain indexed column.
package orderrepo

import (
	"time"

	"foodies/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number              string          `gorm:"size:32;uniqueIndex"`
	CustomerID          string          `gorm:"size:64;index"`
	RestaurantID        string          `gorm:"size:64;index"`
	DeliveryPartnerID   *uuid.UUID      `gorm:"type:uuid;index"`
	Items               []ItemDTO       `gorm:"type:jsonb;serializer:json"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax                 decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total               decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status              string          `gorm:"size:24;index"`
	PaymentStatus       string          `gorm:"size:24"`
	PaymentMethod       string          `gorm:"size:24"`
	Address             AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	SpecialInstructions string
	Tracking            TrackingDTO `gorm:"embedded;embeddedPrefix:tracking_"`
	CreatedAt           time.Time   `gorm:"index"`
	UpdatedAt           time.Time   `gorm:"autoUpdateTime:false"`
	Version             int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	MenuItemID          string          `json:"menu_item_id"`
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Variant             string          `json:"variant,omitempty"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

type AddressDTO struct {
	Line1        string
	Line2        string
	City         string
	State        string
	PostalCode   string
	Country      string
	Latitude     float64
	Longitude    float64
	Landmark     string
	Instructions string
}

// TrackingDTO holds the fulfilment landmarks and the live position.
type TrackingDTO struct {
	Placed           *time.Time
	Confirmed        *time.Time
	Prepared         *time.Time
	PickedUp         *time.Time
	Delivered        *time.Time
	CurrentLatitude  *float64
	CurrentLongitude *float64
	CurrentStatus    string
	Notes            []string `gorm:"type:jsonb;serializer:json"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]ItemDTO, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, ItemDTO{
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			Variant:             item.Variant,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              s.Number,
		CustomerID:          s.CustomerID,
		RestaurantID:        s.RestaurantID,
		DeliveryPartnerID:   partnerID,
		Items:               items,
		Subtotal:            s.Subtotal,
		DeliveryFee:         s.DeliveryFee,
		Tax:                 s.Tax,
		Total:               s.Total,
		Status:              s.Status,
		PaymentStatus:       s.PaymentStatus,
		PaymentMethod:       s.PaymentMethod,
		Address:             AddressDTO(s.DeliveryAddress),
		SpecialInstructions: s.SpecialInstructions,
		Tracking: TrackingDTO{
			Placed:           s.Tracking.Placed,
			Confirmed:        s.Tracking.Confirmed,
			Prepared:         s.Tracking.Prepared,
			PickedUp:         s.Tracking.PickedUp,
			Delivered:        s.Tracking.Delivered,
			CurrentLatitude:  s.Tracking.CurrentLatitude,
			CurrentLongitude: s.Tracking.CurrentLongitude,
			CurrentStatus:    s.Tracking.CurrentStatus,
			Notes:            s.Tracking.Notes,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Version:   s.Version,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder, so a row that
// breaks an invariant is reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	s := order.Snapshot{
		ID:                  dto.ID.String(),
		Number:              dto.Number,
		CustomerID:          dto.CustomerID,
		RestaurantID:        dto.RestaurantID,
		Items:               make([]order.ItemSnapshot, 0, len(dto.Items)),
		Subtotal:            dto.Subtotal,
		DeliveryFee:         dto.DeliveryFee,
		Tax:                 dto.Tax,
		Total:               dto.Total,
		Status:              dto.Status,
		PaymentStatus:       dto.PaymentStatus,
		PaymentMethod:       dto.PaymentMethod,
		DeliveryAddress:     order.AddressSnapshot(dto.Address),
		SpecialInstructions: dto.SpecialInstructions,
		Tracking: order.TrackingSnapshot{
			Placed:           dto.Tracking.Placed,
			Confirmed:        dto.Tracking.Confirmed,
			Prepared:         dto.Tracking.Prepared,
			PickedUp:         dto.Tracking.PickedUp,
			Delivered:        dto.Tracking.Delivered,
			CurrentLatitude:  dto.Tracking.CurrentLatitude,
			CurrentLongitude: dto.Tracking.CurrentLongitude,
			CurrentStatus:    dto.Tracking.CurrentStatus,
			Notes:            dto.Tracking.Notes,
		},
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		Version:   dto.Version,
	}
	if dto.DeliveryPartnerID != nil {
		s.DeliveryPartnerID = dto.DeliveryPartnerID.String()
	}
	for _, item := range dto.Items {
		s.Items = append(s.Items, order.ItemSnapshot{
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			Variant:             item.Variant,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return order.RestoreOrder(s)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
