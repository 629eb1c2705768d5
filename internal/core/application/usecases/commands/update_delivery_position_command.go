package commands

import (
	"errors"

	"foodies/internal/pkg/guard"
)

var ErrUpdateDeliveryPositionCommandIsNotConstructed = errors.New(
	"UpdateDeliveryPositionCommand must be created via NewUpdateDeliveryPositionCommand constructor",
)

// UpdateDeliveryPositionCommand is a position report sent by a delivery
// partner for the order they carry.
type UpdateDeliveryPositionCommand struct {
	location UpdateDeliveryLocationCommand

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryPositionCommand(location UpdateDeliveryLocationCommand) (UpdateDeliveryPositionCommand, error) {
	if err := location.Validate(); err != nil {
		return UpdateDeliveryPositionCommand{}, err
	}

	return UpdateDeliveryPositionCommand{location: location, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDeliveryPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryPositionCommandIsNotConstructed)
}

func (c UpdateDeliveryPositionCommand) Location() UpdateDeliveryLocationCommand {
	return c.location
}
