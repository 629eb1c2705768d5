package order

import (
	"errors"
	"time"

	"foodies/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Snapshot is the flat, serialisable form of an Order. It is what queries
// return, what notifications carry and what repositories restore from.
type Snapshot struct {
	ID                  string           `json:"id"`
	Number              string           `json:"orderNumber"`
	CustomerID          string           `json:"customerId"`
	RestaurantID        string           `json:"restaurantId"`
	DeliveryPartnerID   string           `json:"deliveryPartnerId,omitempty"`
	Items               []ItemSnapshot   `json:"items"`
	Subtotal            decimal.Decimal  `json:"subtotal"`
	DeliveryFee         decimal.Decimal  `json:"deliveryFee"`
	Tax                 decimal.Decimal  `json:"tax"`
	Total               decimal.Decimal  `json:"totalAmount"`
	Status              string           `json:"status"`
	PaymentStatus       string           `json:"paymentStatus"`
	PaymentMethod       string           `json:"paymentMethod"`
	DeliveryAddress     AddressSnapshot  `json:"deliveryAddress"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Tracking            TrackingSnapshot `json:"tracking"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	Version             int64            `json:"version"`
}

type ItemSnapshot struct {
	MenuItemID          string          `json:"menuItemId"`
	Name                string          `json:"menuItemName"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	Variant             string          `json:"variant,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

type AddressSnapshot struct {
	Line1        string  `json:"addressLine1"`
	Line2        string  `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"pincode"`
	Country      string  `json:"country"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Landmark     string  `json:"landmark,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
}

type TrackingSnapshot struct {
	Placed           *time.Time `json:"orderPlaced,omitempty"`
	Confirmed        *time.Time `json:"orderConfirmed,omitempty"`
	Prepared         *time.Time `json:"orderPrepared,omitempty"`
	PickedUp         *time.Time `json:"orderPickedUp,omitempty"`
	Delivered        *time.Time `json:"orderDelivered,omitempty"`
	CurrentLatitude  *float64   `json:"currentLatitude,omitempty"`
	CurrentLongitude *float64   `json:"currentLongitude,omitempty"`
	CurrentStatus    string     `json:"currentStatus"`
	Notes            []string   `json:"notes,omitempty"`
}

// Snapshot returns a deep copy of the order state.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:                  o.id.String(),
		Number:              o.number,
		CustomerID:          o.customerID,
		RestaurantID:        o.restaurantID,
		Items:               make([]ItemSnapshot, 0, len(o.items)),
		Subtotal:            o.amounts.Subtotal(),
		DeliveryFee:         o.amounts.DeliveryFee(),
		Tax:                 o.amounts.Tax(),
		Total:               o.amounts.Total(),
		Status:              o.status.String(),
		PaymentStatus:       o.paymentStatus.String(),
		PaymentMethod:       o.paymentMethod.String(),
		DeliveryAddress:     addressSnapshot(o.deliveryAddress),
		SpecialInstructions: o.specialInstructions,
		Tracking:            trackingSnapshot(o.tracking),
		CreatedAt:           o.createdAt,
		UpdatedAt:           o.updatedAt,
		Version:             o.version,
	}
	if o.deliveryPartnerID != nil {
		s.DeliveryPartnerID = o.deliveryPartnerID.String()
	}
	for _, item := range o.items {
		s.Items = append(s.Items, ItemSnapshot{
			MenuItemID:          item.MenuItemID(),
			Name:                item.Name(),
			Quantity:            item.Quantity(),
			UnitPrice:           item.UnitPrice(),
			TotalPrice:          item.Total(),
			Variant:             item.Variant(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}
	return s
}

// RestoreOrder rebuilds an Order from persisted state, re-checking every
// invariant NewOrder enforces. It records no events.
func RestoreOrder(s Snapshot) (*Order, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}

	status, statusErr := ParseStatus(s.Status)
	paymentStatus, paymentStatusErr := ParsePaymentStatus(s.PaymentStatus)
	method, methodErr := kernel.ParsePaymentMethod(s.PaymentMethod)
	if err := errors.Join(statusErr, paymentStatusErr, methodErr); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(s.Items))
	for _, is := range s.Items {
		item, err := NewItem(is.MenuItemID, is.Name, is.Quantity, is.UnitPrice, is.Variant, is.SpecialInstructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	amounts, err := NewAmounts(s.Subtotal, s.DeliveryFee, s.Tax, s.Total)
	if err != nil {
		return nil, err
	}

	address, err := restoreAddress(s.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	tracking, err := restoreTracking(s.Tracking)
	if err != nil {
		return nil, err
	}

	o := &Order{
		number:              s.Number,
		status:              status,
		paymentStatus:       paymentStatus,
		tracking:            tracking,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		version:             s.Version,
		isConstructed:       true,
		specialInstructions: s.SpecialInstructions,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(s.Number),
		o.setParties(s.CustomerID, s.RestaurantID),
		o.setLines(items, amounts),
		o.setPaymentMethod(method),
		o.setDeliveryAddress(address),
	); err != nil {
		return nil, err
	}

	if s.DeliveryPartnerID != "" {
		partnerID, err := kernel.UUIDFromString(s.DeliveryPartnerID)
		if err != nil {
			return nil, err
		}
		o.deliveryPartnerID = &partnerID
	}

	return o, nil
}

func addressSnapshot(a Address) AddressSnapshot {
	f := a.Fields()
	return AddressSnapshot{
		Line1:        f.Line1,
		Line2:        f.Line2,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		Country:      f.Country,
		Latitude:     f.Location.Latitude(),
		Longitude:    f.Location.Longitude(),
		Landmark:     f.Landmark,
		Instructions: f.Instructions,
	}
}

func restoreAddress(s AddressSnapshot) (Address, error) {
	loc, err := kernel.NewLocation(s.Latitude, s.Longitude)
	if err != nil {
		return Address{}, err
	}
	return NewAddress(AddressFields{
		Line1:        s.Line1,
		Line2:        s.Line2,
		City:         s.City,
		State:        s.State,
		PostalCode:   s.PostalCode,
		Country:      s.Country,
		Landmark:     s.Landmark,
		Instructions: s.Instructions,
		Location:     loc,
	})
}

func trackingSnapshot(t Tracking) TrackingSnapshot {
	s := TrackingSnapshot{
		Placed:        t.Placed(),
		Confirmed:     t.Confirmed(),
		Prepared:      t.Prepared(),
		PickedUp:      t.PickedUp(),
		Delivered:     t.Delivered(),
		CurrentStatus: t.CurrentStatus(),
		Notes:         t.Notes(),
	}
	if loc := t.CurrentLocation(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		s.CurrentLatitude = &lat
		s.CurrentLongitude = &lon
	}
	return s
}

func restoreTracking(s TrackingSnapshot) (Tracking, error) {
	t := Tracking{
		placed:        copyTime(s.Placed),
		confirmed:     copyTime(s.Confirmed),
		prepared:      copyTime(s.Prepared),
		pickedUp:      copyTime(s.PickedUp),
		delivered:     copyTime(s.Delivered),
		currentStatus: s.CurrentStatus,
	}
	if len(s.Notes) > 0 {
		t.notes = append([]string(nil), s.Notes...)
	}
	if s.CurrentLatitude != nil && s.CurrentLongitude != nil {
		loc, err := kernel.NewLocation(*s.CurrentLatitude, *s.CurrentLongitude)
		if err != nil {
			return Tracking{}, err
		}
		t.currentLocation = &loc
	}
	return t, nil
}
