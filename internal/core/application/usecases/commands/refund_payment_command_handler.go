package commands

import (
	"context"

	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"
)

type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.Locker
	provider   ports.PaymentProvider
	orders     OrderRefundRecorder
	access     services.AccessPolicy
}

func NewRefundPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.Locker,
	provider ports.PaymentProvider,
	orders OrderRefundRecorder,
) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		provider:   provider,
		orders:     orders,
		access:     services.NewAccessPolicy(),
	}
}

// Handle refunds through the provider, records the refund on the payment and
// then on the order. Only ADMIN and SYSTEM may refund.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) (payment.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Snapshot{}, err
	}

	if err := h.access.CanRefund(cmd.Principal()); err != nil {
		return payment.Snapshot{}, err
	}

	current, err := h.uowFactory.Create().PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return payment.Snapshot{}, err
	}

	var (
		result payment.Snapshot
		full   bool
	)
	err = withLock(ctx, h.locker, ports.PaymentLockKey(current.ProviderOrderID()), func() error {
		p, err := h.uowFactory.Create().PaymentRepository().Get(ctx, cmd.PaymentID())
		if err != nil {
			return err
		}

		if p.Status() != payment.Completed {
			return errs.NewInvalidTransitionError("payment", p.Status().String(), payment.Refunded.String())
		}

		amount := p.Amount()
		if a := cmd.Amount(); a != nil {
			amount = *a
		}
		if err = payment.ValidateRefundAmount(p.Amount(), amount); err != nil {
			return err
		}

		minor, err := payment.ToMinorUnits(amount)
		if err != nil {
			return err
		}

		refundID, err := h.provider.Refund(ctx, p.ProviderPaymentID(), minor)
		if err != nil {
			return err
		}

		return retryOnConflict(ctx, func() error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			paymentRepo := uow.PaymentRepository()

			fresh, err := paymentRepo.Get(ctx, cmd.PaymentID())
			if err != nil {
				return err
			}

			full, err = fresh.Refund(amount, cmd.Reason(), refundID, now())
			if err != nil {
				return err
			}

			if err = paymentRepo.Update(ctx, fresh); err != nil {
				return err
			}

			if err = uow.Commit(ctx); err != nil {
				return err
			}

			result = fresh.Snapshot()
			return nil
		})
	})
	if err != nil {
		return payment.Snapshot{}, err
	}

	orderID := current.OrderID()
	if err = h.orders.RecordOrderRefunded(ctx, orderID, full); err != nil {
		return result, err
	}

	return result, nil
}
