package queries

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of a principal.
//
// Example:
//
//	query, err := NewGetOrderQuery(principal, orderID)
//	if err != nil {
//	    return err
//	}
//	snapshot, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	principal kernel.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(principal kernel.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(requirePrincipal(principal), requireID("order id", orderID)); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Principal() kernel.Principal { return q.principal }
func (q GetOrderQuery) OrderID() kernel.UUID        { return q.orderID }

func requirePrincipal(p kernel.Principal) error {
	if p.Role() == kernel.RoleUnknown || p.ID() == "" {
		return errs.NewValueIsRequiredError("principal")
	}
	return nil
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
