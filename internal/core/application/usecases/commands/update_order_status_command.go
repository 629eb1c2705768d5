package commands

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order along its lifecycle.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(restaurant, orderID, order.Confirmed, "accepted by kitchen")
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the order was left untouched
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	orderID   kernel.UUID
	target    order.Status
	note      string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	target order.Status,
	note string,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		target.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		principal: principal,
		orderID:   orderID,
		target:    target,
		note:      strings.TrimSpace(note),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Principal() kernel.Principal { return c.principal }
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID        { return c.orderID }
func (c UpdateOrderStatusCommand) Target() order.Status        { return c.target }
func (c UpdateOrderStatusCommand) Note() string                { return c.note }
