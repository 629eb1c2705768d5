package queries

import (
	"context"

	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/domain/services"
)

// GetPaymentQueryHandler returns a payment to the paying customer or to a
// privileged principal.
type GetPaymentQueryHandler struct {
	payments PaymentReader
	access   services.AccessPolicy
}

func NewGetPaymentQueryHandler(payments PaymentReader) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{payments: payments, access: services.NewAccessPolicy()}
}

func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (payment.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return payment.Snapshot{}, err
	}

	var (
		p   *payment.Payment
		err error
	)
	if query.ByOrder() {
		p, err = h.payments.GetByOrder(ctx, query.OrderID())
	} else {
		p, err = h.payments.Get(ctx, query.PaymentID())
	}
	if err != nil {
		return payment.Snapshot{}, err
	}

	if err = h.access.CanViewPayment(query.Principal(), p.CustomerID()); err != nil {
		return payment.Snapshot{}, err
	}

	return p.Snapshot(), nil
}
