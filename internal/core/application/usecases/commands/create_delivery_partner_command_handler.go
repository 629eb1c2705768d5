package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/services"
)

// CreateDeliveryPartnerCommandHandler handles the business logic for
// onboarding delivery partners.
type CreateDeliveryPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	access     services.AccessPolicy
}

func NewCreateDeliveryPartnerCommandHandler(uowFactory PartnerUoWFactory) CreateDeliveryPartnerCommandHandler {
	return CreateDeliveryPartnerCommandHandler{uowFactory: uowFactory, access: services.NewAccessPolicy()}
}

// Handle creates the partner and returns its id.
func (h CreateDeliveryPartnerCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPartnerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.access.CanManagePartners(cmd.Principal()); err != nil {
		return kernel.UUID{}, err
	}

	p, err := partner.NewPartner(kernel.NewUUID(), cmd.Name(), cmd.Vehicle(), cmd.Location())
	if err != nil {
		return kernel.UUID{}, err
	}
	if cmd.Approved() {
		p.Approve()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
