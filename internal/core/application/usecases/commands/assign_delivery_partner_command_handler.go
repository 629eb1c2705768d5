package commands

import (
	"context"
	"errors"

	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"
)

// AssignDeliveryPartnerCommandHandler orchestrates a manual assignment.
// The partner is checked by services.ManualStrategy; an unknown or ineligible
// partner fails with errs.AuthorizationError and the order keeps its current
// partner.
type AssignDeliveryPartnerCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.Locker
	access     services.AccessPolicy
}

func NewAssignDeliveryPartnerCommandHandler(uowFactory UoWFactory, locker ports.Locker) AssignDeliveryPartnerCommandHandler {
	return AssignDeliveryPartnerCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		access:     services.NewAccessPolicy(),
	}
}

// Handle locks the order, authorizes the principal, confirms the partner and
// persists the assignment. Re-assigning the current partner is a no-op that
// publishes nothing.
func (h AssignDeliveryPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryPartnerCommand,
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
			partnerRepo := uow.PartnerRepository()

			o, err := orderRepo.Get(ctx, cmd.OrderID())
			if err != nil {
				return err
			}

			if err = h.access.CanAssign(cmd.Principal(), o); err != nil {
				return err
			}

			candidates := make([]*partner.Partner, 0, 1)
			p, err := partnerRepo.Get(ctx, cmd.PartnerID())
			switch {
			case errors.Is(err, errs.ErrObjectNotFound):
			case err != nil:
				return err
			default:
				candidates = append(candidates, p)
			}

			picked, err := services.NewManualStrategy(cmd.PartnerID()).Pick(o, candidates)
			if err != nil {
				return err
			}

			changed, err := o.AssignPartner(picked.ID(), now())
			if err != nil {
				return err
			}

			if changed {
				if err = orderRepo.Update(ctx, o); err != nil {
					return err
				}

				if err = uow.Commit(ctx); err != nil {
					return err
				}
			}

			result = o.Snapshot()
			return nil
		})
	})

	return result, err
}
