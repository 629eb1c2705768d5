package commands

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPartnerCommandIsNotConstructed = errors.New(
		"CreateDeliveryPartnerCommand must be created via NewCreateDeliveryPartnerCommand constructor",
	)
	ErrPartnerNameIsRequired = errors.New("partner name is required")
)

// CreateDeliveryPartnerCommand onboards a delivery partner.
//
// Example:
//
//	cmd, err := NewCreateDeliveryPartnerCommand(admin, "Ravi", partner.VehicleScooter, location, true)
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//	partnerID, err := handler.Handle(ctx, cmd)
type CreateDeliveryPartnerCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	name      string
	vehicle   partner.Vehicle
	location  kernel.Location
	approved  bool

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPartnerCommand validates the partner data. An approved
// partner can go online right away; others wait for approval.
func NewCreateDeliveryPartnerCommand(
	principal kernel.Principal,
	name string,
	vehicle partner.Vehicle,
	location kernel.Location,
	approved bool,
) (CreateDeliveryPartnerCommand, error) {
	cmd := CreateDeliveryPartnerCommand{
		principal: principal,
		vehicle:   vehicle,
		location:  location,
		approved:  approved,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePrincipal(principal),
		cmd.setName(name),
		vehicle.Validate(),
		location.Validate(),
	); err != nil {
		return CreateDeliveryPartnerCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPartnerCommandIsNotConstructed)
}

func (c CreateDeliveryPartnerCommand) Principal() kernel.Principal { return c.principal }
func (c CreateDeliveryPartnerCommand) Name() string                { return c.name }
func (c CreateDeliveryPartnerCommand) Vehicle() partner.Vehicle    { return c.vehicle }
func (c CreateDeliveryPartnerCommand) Location() kernel.Location   { return c.location }
func (c CreateDeliveryPartnerCommand) Approved() bool              { return c.approved }

func (c *CreateDeliveryPartnerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}
