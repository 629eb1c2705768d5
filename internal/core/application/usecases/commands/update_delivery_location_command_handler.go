package commands

import (
	"context"

	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
)

// UpdateDeliveryLocationCommandHandler stores the live position of an order
// and, after commit, emits a delivery-updates notification. The order status
// is never changed.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.Locker
	access     services.AccessPolicy
}

func NewUpdateDeliveryLocationCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.Locker,
) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		access:     services.NewAccessPolicy(),
	}
}

func (h UpdateDeliveryLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryLocationCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	var result order.Snapshot
	err := withLock(ctx, h.locker, ports.OrderLockKey(cmd.OrderID().String()), func() error {
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

			if err = h.access.CanUpdateLocation(cmd.Principal(), o); err != nil {
				return err
			}

			if err = o.UpdateLocation(cmd.Location(), now()); err != nil {
				return err
			}

			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}

			if err = uow.Commit(ctx); err != nil {
				return err
			}

			result = o.Snapshot()
			return nil
		})
	})

	return result, err
}
