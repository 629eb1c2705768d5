package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records that the payment of an order was verified.
// It is issued by the payment flow only, never by an end user.
type MarkOrderPaidCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	if err := requireID("order id", orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}
