package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/logger"

	"go.uber.org/zap"
)

// VerifyPaymentCommandHandler completes a payment once its provider
// signature checks out and then records the order as paid.
//
// Verification is safe to retry: a payment already completed with the same
// identifiers is returned unchanged, and the order callback runs again so a
// failure between the two steps heals on the next attempt.
type VerifyPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.Locker
	verifier   ports.SignatureVerifier
	orders     OrderPaymentRecorder
	log        *zap.Logger
}

// NewVerifyPaymentCommandHandler creates the handler. A nil log discards
// late-capture warnings.
func NewVerifyPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	locker ports.Locker,
	verifier ports.SignatureVerifier,
	orders OrderPaymentRecorder,
	log *zap.Logger,
) VerifyPaymentCommandHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		verifier:   verifier,
		orders:     orders,
		log:        log,
	}
}

// Handle returns:
//   - errs.ObjectNotFoundError: no payment for the provider order id
//   - errs.ErrSignatureMismatch: the payment stays as it was
//   - errs.InvalidTransitionError: the payment was completed with other
//     identifiers, or it was cancelled or failed before the capture arrived.
//     The latter is logged at warn level for reconciliation.
func (h VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) (payment.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Snapshot{}, err
	}

	var (
		result  payment.Snapshot
		orderID kernel.UUID
	)
	err := withLock(ctx, h.locker, ports.PaymentLockKey(cmd.ProviderOrderID()), func() error {
		return retryOnConflict(ctx, func() error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			paymentRepo := uow.PaymentRepository()

			p, err := paymentRepo.GetByProviderOrderID(ctx, cmd.ProviderOrderID())
			if err != nil {
				return err
			}

			if err = h.verifier.Verify(cmd.ProviderOrderID(), cmd.ProviderPaymentID(), cmd.Signature()); err != nil {
				return err
			}

			orderID = p.OrderID()

			if p.IsCompletedWith(cmd.ProviderPaymentID(), cmd.Signature()) {
				result = p.Snapshot()
				return nil
			}

			if status := p.Status(); status == payment.Cancelled || status == payment.Failed {
				logger.FromCtx(ctx, h.log).Warn("capture arrived for a closed payment intent",
					zap.String("payment_id", p.ID().String()),
					zap.String("order_id", p.OrderID().String()),
					zap.String("payment_status", status.String()),
					zap.String("provider_order_id", cmd.ProviderOrderID()),
					zap.String("provider_payment_id", cmd.ProviderPaymentID()),
				)
			}

			if err = p.Complete(cmd.ProviderPaymentID(), cmd.Signature(), now()); err != nil {
				return err
			}

			if err = paymentRepo.Update(ctx, p); err != nil {
				return err
			}

			if err = uow.Commit(ctx); err != nil {
				return err
			}

			result = p.Snapshot()
			return nil
		})
	})
	if err != nil {
		return payment.Snapshot{}, err
	}

	if err = h.orders.RecordOrderPaid(ctx, orderID); err != nil {
		return result, err
	}

	return result, nil
}
