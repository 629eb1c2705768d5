package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
)

// UpdatePartnerCommandHandler applies location and availability changes to
// a delivery partner under the per-partner lock.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	locker     ports.Locker
	access     services.AccessPolicy
}

func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory, locker ports.Locker) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{uowFactory: uowFactory, locker: locker, access: services.NewAccessPolicy()}
}

func (h UpdatePartnerCommandHandler) HandleLocation(ctx context.Context, cmd UpdatePartnerLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.access.CanUpdatePartner(cmd.Principal(), cmd.PartnerID().String()); err != nil {
		return err
	}

	return h.update(ctx, cmd.PartnerID(), func(p *partner.Partner) error {
		return p.MoveTo(cmd.Location())
	})
}

// HandleAvailability sets availability. A partner that is not approved may
// not go online.
func (h UpdatePartnerCommandHandler) HandleAvailability(ctx context.Context, cmd SetPartnerAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.access.CanUpdatePartner(cmd.Principal(), cmd.PartnerID().String()); err != nil {
		return err
	}

	return h.update(ctx, cmd.PartnerID(), func(p *partner.Partner) error {
		if cmd.Available() && !p.IsApproved() {
			return partner.ErrPartnerIsNotApproved
		}
		p.SetAvailable(cmd.Available())
		return nil
	})
}

func (h UpdatePartnerCommandHandler) update(ctx context.Context, id kernel.UUID, mutate func(p *partner.Partner) error) error {
	return withLock(ctx, h.locker, ports.PartnerLockKey(id.String()), func() error {
		return retryOnConflict(ctx, func() error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			partnerRepo := uow.PartnerRepository()

			p, err := partnerRepo.Get(ctx, id)
			if err != nil {
				return err
			}

			if err = mutate(p); err != nil {
				return err
			}

			if err = partnerRepo.Update(ctx, p); err != nil {
				return err
			}

			return uow.Commit(ctx)
		})
	})
}
