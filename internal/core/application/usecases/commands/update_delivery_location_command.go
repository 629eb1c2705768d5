package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports where an order currently is.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   kernel.UUID
	location  kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryLocationCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	latitude float64,
	longitude float64,
) (UpdateDeliveryLocationCommand, error) {
	location, locErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		locErr,
	); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return UpdateDeliveryLocationCommand{
		principal: principal,
		orderID:   orderID,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) Principal() kernel.Principal { return c.principal }
func (c UpdateDeliveryLocationCommand) OrderID() kernel.UUID        { return c.orderID }
func (c UpdateDeliveryLocationCommand) Location() kernel.Location   { return c.location }
