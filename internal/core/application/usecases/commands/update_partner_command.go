package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var (
	ErrUpdatePartnerLocationCommandIsNotConstructed = errors.New(
		"UpdatePartnerLocationCommand must be created via NewUpdatePartnerLocationCommand constructor",
	)
	ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
		"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
	)
)

// UpdatePartnerLocationCommand moves a delivery partner, e.g. from the
// partner app while idle.
type UpdatePartnerLocationCommand struct {
	principal kernel.Principal
	partnerID kernel.UUID
	location  kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdatePartnerLocationCommand(
	principal kernel.Principal,
	partnerID kernel.UUID,
	latitude float64,
	longitude float64,
) (UpdatePartnerLocationCommand, error) {
	location, locErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("partner id", partnerID),
		locErr,
	); err != nil {
		return UpdatePartnerLocationCommand{}, err
	}

	return UpdatePartnerLocationCommand{
		principal: principal,
		partnerID: partnerID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePartnerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerLocationCommandIsNotConstructed)
}

func (c UpdatePartnerLocationCommand) Principal() kernel.Principal { return c.principal }
func (c UpdatePartnerLocationCommand) PartnerID() kernel.UUID      { return c.partnerID }
func (c UpdatePartnerLocationCommand) Location() kernel.Location   { return c.location }

// SetPartnerAvailabilityCommand takes a partner online or offline.
type SetPartnerAvailabilityCommand struct {
	principal kernel.Principal
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetPartnerAvailabilityCommand(
	principal kernel.Principal,
	partnerID kernel.UUID,
	available bool,
) (SetPartnerAvailabilityCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("partner id", partnerID),
	); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return SetPartnerAvailabilityCommand{
		principal: principal,
		partnerID: partnerID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

func (c SetPartnerAvailabilityCommand) Principal() kernel.Principal { return c.principal }
func (c SetPartnerAvailabilityCommand) PartnerID() kernel.UUID      { return c.partnerID }
func (c SetPartnerAvailabilityCommand) Available() bool             { return c.available }
