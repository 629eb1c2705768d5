package order

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// AddressFields carries the raw input for NewAddress.
type AddressFields struct {
	Line1        string
	Line2        string
	City         string
	State        string
	PostalCode   string
	Country      string
	Landmark     string
	Instructions string
	Location     kernel.Location
}

// Address is the delivery destination. Line1, city, state, postal code,
// country and a geolocation are required.
type Address struct {
	fields AddressFields
	guard  guard.ConstructorGuard
}

func NewAddress(f AddressFields) (Address, error) {
	f.Line1 = strings.TrimSpace(f.Line1)
	f.Line2 = strings.TrimSpace(f.Line2)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.PostalCode = strings.TrimSpace(f.PostalCode)
	f.Country = strings.TrimSpace(f.Country)
	f.Landmark = strings.TrimSpace(f.Landmark)
	f.Instructions = strings.TrimSpace(f.Instructions)

	if err := errors.Join(
		required("address line1", f.Line1),
		required("city", f.City),
		required("state", f.State),
		required("postal code", f.PostalCode),
		required("country", f.Country),
		f.Location.Validate(),
	); err != nil {
		return Address{}, err
	}

	return Address{fields: f, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the address components.
func (a Address) Fields() AddressFields {
	return a.fields
}

func (a Address) Location() kernel.Location {
	return a.fields.Location
}

func (a Address) String() string {
	parts := []string{a.fields.Line1}
	if a.fields.Line2 != "" {
		parts = append(parts, a.fields.Line2)
	}
	parts = append(parts, a.fields.City, a.fields.State+" "+a.fields.PostalCode, a.fields.Country)
	return strings.Join(parts, ", ")
}

func required(name, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
