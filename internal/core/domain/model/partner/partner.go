package partner

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrPartnerIsNotApproved is returned when an unapproved partner tries to go online.
	ErrPartnerIsNotApproved = errs.NewValueIsInvalidErrorWithCause("availability", errors.New("partner is not approved"))
)

// Partner is a delivery partner: the person who picks an order up at the
// restaurant and brings it to the customer.
//
// Business rules:
//   - A partner must have a valid UUID, non-empty name and a known vehicle
//   - Only approved partners that are available may be assigned orders
//   - The last reported position is kept for nearest-partner matching
//
// Example usage:
//
//	loc, _ := kernel.NewLocation(12.9716, 77.5946)
//	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi", partner.VehicleScooter, loc)
//	if err != nil {
//	    // Handle construction error
//	}
//	p.Approve()
//	p.SetAvailable(true)
type Partner struct {
	id        kernel.UUID
	name      string
	vehicle   Vehicle
	approved  bool
	available bool
	location  kernel.Location
	version   int64
	guard     guard.ConstructorGuard
}

// NewPartner creates a partner that is neither approved nor available yet.
//
// Parameters:
//   - id: unique identifier
//   - name: display name (must be non-empty)
//   - vehicle: a known vehicle
//   - location: starting position
//
// Returns:
//   - *Partner: the created partner
//   - error: joined validation errors
func NewPartner(id kernel.UUID, name string, vehicle Vehicle, location kernel.Location) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setVehicle(vehicle),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner rebuilds a partner from persisted state.
func RestorePartner(
	id kernel.UUID,
	name string,
	vehicle Vehicle,
	approved bool,
	available bool,
	location kernel.Location,
	version int64,
) (*Partner, error) {
	p, err := NewPartner(id, name, vehicle, location)
	if err != nil {
		return nil, err
	}
	p.approved = approved
	p.available = available
	p.version = version
	return p, nil
}

// IsEqual compares partners by identifier.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Validate reports ErrPartnerIsNotConstructed for a nil or zero-value partner.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

func (p *Partner) Vehicle() Vehicle {
	return p.vehicle
}

func (p *Partner) IsApproved() bool {
	return p.approved
}

func (p *Partner) IsAvailable() bool {
	return p.available
}

func (p *Partner) Location() kernel.Location {
	return p.location
}

// Version is the optimistic concurrency version of the stored row.
func (p *Partner) Version() int64 {
	return p.version
}

// CommitVersion is called by a repository after a versioned write succeeded.
func (p *Partner) CommitVersion() {
	p.version++
}

// IsEligible is true when the partner may be assigned an order.
func (p *Partner) IsEligible() bool {
	return p.approved && p.available
}

// Approve marks the partner as vetted by an administrator.
func (p *Partner) Approve() {
	p.approved = true
}

// SetAvailable toggles whether the partner is accepting orders.
func (p *Partner) SetAvailable(available bool) {
	p.available = available
}

// MoveTo records a new position.
func (p *Partner) MoveTo(location kernel.Location) error {
	return p.setLocation(location)
}

// MinutesToLocation estimates travel time to target at the vehicle's
// average city speed.
//
// Example:
//
//	eta, err := p.MinutesToLocation(restaurantLocation)
//	if err != nil {
//	    // invalid location
//	}
func (p *Partner) MinutesToLocation(target kernel.Location) (float64, error) {
	km, err := p.location.DistanceKm(target)
	if err != nil {
		return 0, err
	}
	return km / p.vehicle.averageSpeedKmh() * 60, nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	p.vehicle = vehicle
	return nil
}

func (p *Partner) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
