package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/ports"
)

// UpdateDeliveryPositionCommandHandler forwards a position report to the
// order lifecycle and then moves the reporting partner to the same spot, so
// the nearest-partner strategy sees fresh positions.
type UpdateDeliveryPositionCommandHandler struct {
	locations  DeliveryLocationUpdater
	uowFactory PartnerUoWFactory
	locker     ports.Locker
}

func NewUpdateDeliveryPositionCommandHandler(
	locations DeliveryLocationUpdater,
	uowFactory PartnerUoWFactory,
	locker ports.Locker,
) UpdateDeliveryPositionCommandHandler {
	return UpdateDeliveryPositionCommandHandler{locations: locations, uowFactory: uowFactory, locker: locker}
}

func (h UpdateDeliveryPositionCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryPositionCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	snapshot, err := h.locations.Handle(ctx, cmd.Location())
	if err != nil {
		return order.Snapshot{}, err
	}

	principal := cmd.Location().Principal()
	if principal.Role() != kernel.RoleDeliveryPartner || principal.ID() != snapshot.DeliveryPartnerID {
		return snapshot, nil
	}

	partnerID, err := kernel.UUIDFromString(snapshot.DeliveryPartnerID)
	if err != nil {
		return snapshot, err
	}

	err = withLock(ctx, h.locker, ports.PartnerLockKey(partnerID.String()), func() error {
		return retryOnConflict(ctx, func() error {
			return movePartner(ctx, h.uowFactory, partnerID, cmd.Location().Location())
		})
	})

	return snapshot, err
}

func movePartner(ctx context.Context, uowFactory PartnerUoWFactory, partnerID kernel.UUID, to kernel.Location) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	if err = p.MoveTo(to); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
