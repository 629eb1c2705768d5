package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/ports"
)

// MarkOrderPaidCommandHandler moves an order's payment status to PAID.
// Calling it again for a paid order changes nothing and publishes nothing,
// which lets payment verification call it on every retry.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.Locker
}

func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory, locker ports.Locker) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{uowFactory: uowFactory, locker: locker}
}

func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withLock(ctx, h.locker, ports.OrderLockKey(cmd.OrderID().String()), func() error {
		return retryOnConflict(ctx, func() error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			orderRepo := uow.OrderRepository()

			o, err := orderRepo.Get(ctx, cmd.OrderID())
			if err != nil {
				return err
			}

			changed, err := o.MarkPaid(now())
			if err != nil || !changed {
				return err
			}

			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}

			return uow.Commit(ctx)
		})
	})
}

// RecordOrderPaid implements OrderPaymentRecorder.
func (h MarkOrderPaidCommandHandler) RecordOrderPaid(ctx context.Context, orderID kernel.UUID) error {
	cmd, err := NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}
