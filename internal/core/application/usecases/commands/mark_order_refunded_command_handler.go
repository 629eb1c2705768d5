package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/ports"
)

type MarkOrderRefundedCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.Locker
	codPolicy  order.CashOnDeliveryPolicy
}

func NewMarkOrderRefundedCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.Locker,
	codPolicy order.CashOnDeliveryPolicy,
) MarkOrderRefundedCommandHandler {
	return MarkOrderRefundedCommandHandler{uowFactory: uowFactory, locker: locker, codPolicy: codPolicy}
}

func (h MarkOrderRefundedCommandHandler) Handle(ctx context.Context, cmd MarkOrderRefundedCommand) error {
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

			changed, err := o.MarkRefunded(cmd.Full(), h.codPolicy, now())
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

// RecordOrderRefunded implements OrderRefundRecorder.
func (h MarkOrderRefundedCommandHandler) RecordOrderRefunded(ctx context.Context, orderID kernel.UUID, full bool) error {
	cmd, err := NewMarkOrderRefundedCommand(orderID, full)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}
