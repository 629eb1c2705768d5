package commands

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer placing a new food order.
// The draft carries already validated line items, amounts and address; the
// invariants that span them (total, subtotal) are checked by order.NewOrder.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customer, order.Draft{
//	    CustomerID:      "cust-1",
//	    RestaurantID:    "rest-1",
//	    Items:           items,
//	    Amounts:         amounts,
//	    PaymentMethod:   kernel.PaymentMethodProvider,
//	    DeliveryAddress: address,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	draft     order.Draft

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(principal kernel.Principal, draft order.Draft) (CreateOrderCommand, error) {
	if err := requirePrincipal(principal); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		principal: principal,
		draft:     draft,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Principal() kernel.Principal {
	return c.principal
}

func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}
