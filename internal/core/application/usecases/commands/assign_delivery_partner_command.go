package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrAssignDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AssignDeliveryPartnerCommand must be created via NewAssignDeliveryPartnerCommand constructor",
)

// AssignDeliveryPartnerCommand assigns a chosen delivery partner to an order.
// Reassignment is allowed until the order is picked up.
//
// Example:
//
//	cmd, err := NewAssignDeliveryPartnerCommand(restaurant, orderID, partnerID)
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAuthorization):
//	    // unknown, unapproved or unavailable partner
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order already picked up or ended
//	}
type AssignDeliveryPartnerCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryPartnerCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	partnerID kernel.UUID,
) (AssignDeliveryPartnerCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		requireID("partner id", partnerID),
	); err != nil {
		return AssignDeliveryPartnerCommand{}, err
	}

	return AssignDeliveryPartnerCommand{
		principal: principal,
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryPartnerCommandIsNotConstructed if validation fails.
func (c AssignDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPartnerCommandIsNotConstructed)
}

func (c AssignDeliveryPartnerCommand) Principal() kernel.Principal { return c.principal }
func (c AssignDeliveryPartnerCommand) OrderID() kernel.UUID        { return c.orderID }
func (c AssignDeliveryPartnerCommand) PartnerID() kernel.UUID      { return c.partnerID }
