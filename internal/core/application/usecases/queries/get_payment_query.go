package queries

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrGetPaymentQueryIsNotConstructed = errors.New(
	"GetPaymentQuery must be created via NewGetPaymentQuery or NewGetPaymentByOrderQuery constructor",
)

// GetPaymentQuery retrieves a payment by its id, or the latest payment of an
// order when built with NewGetPaymentByOrderQuery.
type GetPaymentQuery struct {
	principal kernel.Principal
	paymentID kernel.UUID
	orderID   kernel.UUID
	byOrder   bool

	guard guard.ConstructorGuard
}

func NewGetPaymentQuery(principal kernel.Principal, paymentID kernel.UUID) (GetPaymentQuery, error) {
	if err := errors.Join(requirePrincipal(principal), requireID("payment id", paymentID)); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{principal: principal, paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetPaymentByOrderQuery(principal kernel.Principal, orderID kernel.UUID) (GetPaymentQuery, error) {
	if err := errors.Join(requirePrincipal(principal), requireID("order id", orderID)); err != nil {
		return GetPaymentQuery{}, err
	}
	return GetPaymentQuery{principal: principal, orderID: orderID, byOrder: true, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

func (q GetPaymentQuery) Principal() kernel.Principal { return q.principal }
func (q GetPaymentQuery) PaymentID() kernel.UUID      { return q.paymentID }
func (q GetPaymentQuery) OrderID() kernel.UUID        { return q.orderID }
func (q GetPaymentQuery) ByOrder() bool               { return q.byOrder }
