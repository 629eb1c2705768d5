package commands

import (
	"context"
	"errors"
	"fmt"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"
)

// CreatePaymentIntentCommandHandler creates at most one open payment per
// order. The intent lock is held across the provider call, so two concurrent
// requests for one order produce a single provider order and both callers
// receive the same record.
type CreatePaymentIntentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.Locker
	provider   ports.PaymentProvider
	access     services.AccessPolicy
}

func NewCreatePaymentIntentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.Locker,
	provider ports.PaymentProvider,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		provider:   provider,
		access:     services.NewAccessPolicy(),
	}
}

// Handle returns the open payment of the order when there is one, and
// otherwise opens a provider order and stores a PENDING payment.
//
// Returns:
//   - errs.ObjectNotFoundError: unknown order
//   - errs.AuthorizationError: principal may not pay for the customer
//   - validation errors: customer or amount differ from the order, or the
//     order is not paid through the provider
//   - errs.InvalidTransitionError: the order is already paid
//   - errs.ProviderError: the provider could not open the order
func (h CreatePaymentIntentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentIntentCommand) (payment.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Snapshot{}, err
	}

	if err := h.access.CanPay(cmd.Principal(), cmd.CustomerID()); err != nil {
		return payment.Snapshot{}, err
	}

	var result payment.Snapshot
	err := withLock(ctx, h.locker, ports.PaymentIntentLockKey(cmd.OrderID().String()), func() error {
		o, existing, err := h.load(ctx, cmd)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing.Snapshot()
			return nil
		}

		minor, err := payment.ToMinorUnits(cmd.Amount())
		if err != nil {
			return err
		}

		providerOrderID, err := h.provider.CreateOrder(ctx, minor, payment.DefaultCurrency, "order_"+o.ID().String())
		if err != nil {
			return err
		}

		p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), o.CustomerID(), cmd.Amount(), o.PaymentMethod(), providerOrderID, now())
		if err != nil {
			return err
		}

		uow := h.uowFactory.Create()
		if err = uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err = uow.PaymentRepository().Add(ctx, p); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		result = p.Snapshot()
		return nil
	})

	return result, err
}

// load validates the request against the stored order and returns the
// payment that is still open for it, if any.
func (h CreatePaymentIntentCommandHandler) load(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (*order.Order, *payment.Payment, error) {
	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, nil, err
	}

	if o.CustomerID() != cmd.CustomerID() {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("customer id",
			errors.New("order belongs to another customer"))
	}
	if !cmd.Amount().Equal(o.Total()) {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s does not match order total %s", cmd.Amount(), o.Total()))
	}
	if !o.PaymentMethod().IsProviderRouted() {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%s orders are not paid through the provider", o.PaymentMethod()))
	}
	if o.PaymentStatus() != order.PaymentPending && o.PaymentStatus() != order.PaymentFailed {
		return nil, nil, errs.NewInvalidTransitionError("order payment", o.PaymentStatus().String(), payment.Pending.String())
	}

	existing, err := uow.PaymentRepository().GetByOrder(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return o, nil, nil
	case err != nil:
		return nil, nil, err
	}

	switch {
	case existing.Status().IsOpen():
		return o, existing, nil
	case existing.Status() == payment.Completed,
		existing.Status() == payment.Refunded,
		existing.Status() == payment.PartiallyRefunded:
		return nil, nil, errs.NewInvalidTransitionError("payment", existing.Status().String(), payment.Pending.String())
	default:
		return o, nil, nil
	}
}
