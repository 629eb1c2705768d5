package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrMarkOrderRefundedCommandIsNotConstructed = errors.New(
	"MarkOrderRefundedCommand must be created via NewMarkOrderRefundedCommand constructor",
)

// MarkOrderRefundedCommand records a provider refund against an order.
// A full refund ends the order in REFUNDED; a partial one only changes the
// payment status.
type MarkOrderRefundedCommand struct {
	orderID kernel.UUID
	full    bool

	guard guard.ConstructorGuard
}

func NewMarkOrderRefundedCommand(orderID kernel.UUID, full bool) (MarkOrderRefundedCommand, error) {
	if err := requireID("order id", orderID); err != nil {
		return MarkOrderRefundedCommand{}, err
	}

	return MarkOrderRefundedCommand{orderID: orderID, full: full, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderRefundedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderRefundedCommandIsNotConstructed)
}

func (c MarkOrderRefundedCommand) OrderID() kernel.UUID { return c.orderID }
func (c MarkOrderRefundedCommand) Full() bool           { return c.full }
