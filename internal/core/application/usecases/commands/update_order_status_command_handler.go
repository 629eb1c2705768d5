package commands

import (
	"context"

	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions under the
// per-order lock. A rejected transition leaves the stored order as it was.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     ports.Locker
	codPolicy  order.CashOnDeliveryPolicy
	access     services.AccessPolicy
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.Locker,
	codPolicy order.CashOnDeliveryPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		codPolicy:  codPolicy,
		access:     services.NewAccessPolicy(),
	}
}

// Handle loads the order, authorizes the principal for the target status,
// applies the transition and persists it with a version check.
//
// Returns:
//   - errs.ObjectNotFoundError: unknown order
//   - errs.AuthorizationError: principal may not move the order to target
//   - errs.InvalidTransitionError: the transition table or the payment rule forbids it
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (order.Snapshot, error) {
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

			if err = h.access.CanTransition(cmd.Principal(), o, cmd.Target()); err != nil {
				return err
			}

			if err = o.Transition(cmd.Target(), cmd.Note(), h.codPolicy, now()); err != nil {
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
