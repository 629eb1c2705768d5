package commands

import (
	"context"
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
)

var (
	ErrNoFreePartnersFound = errors.New("no free delivery partners found")
	ErrNoOrderFound        = errors.New("no order found")
)

// AutoAssignPartnerCommandHandler matches the oldest unassigned order with a
// free partner chosen by the configured strategy, then performs the
// assignment through the manual assignment handler so the same lock,
// authorization and notification rules apply.
//
// Example:
//
//	handler := NewAutoAssignPartnerCommandHandler(uowFactory, services.NearestStrategy{}, assignHandler)
//	_, err := handler.Handle(ctx, NewAutoAssignPartnerCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No unassigned orders")
//	case errors.Is(err, ErrNoFreePartnersFound):
//	    log.Println("All partners are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AutoAssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	strategy   services.AssignmentStrategy
	assigner   PartnerAssigner
}

func NewAutoAssignPartnerCommandHandler(
	uowFactory UoWFactory,
	strategy services.AssignmentStrategy,
	assigner PartnerAssigner,
) AutoAssignPartnerCommandHandler {
	return AutoAssignPartnerCommandHandler{
		uowFactory: uowFactory,
		strategy:   strategy,
		assigner:   assigner,
	}
}

func (h AutoAssignPartnerCommandHandler) Handle(ctx context.Context, cmd AutoAssignPartnerCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	uow := h.uowFactory.Create()

	orders, err := uow.OrderRepository().GetPendingWithoutPartner(ctx)
	if err != nil {
		return order.Snapshot{}, err
	}
	if len(orders) == 0 {
		return order.Snapshot{}, ErrNoOrderFound
	}

	partners, err := uow.PartnerRepository().GetAllFree(ctx)
	if err != nil {
		return order.Snapshot{}, err
	}
	if len(partners) == 0 {
		return order.Snapshot{}, ErrNoFreePartnersFound
	}

	oldest := orders[0]
	picked, err := h.strategy.Pick(oldest, partners)
	if errors.Is(err, services.ErrPartnerNotFound) {
		return order.Snapshot{}, ErrNoFreePartnersFound
	}
	if err != nil {
		return order.Snapshot{}, err
	}

	assign, err := NewAssignDeliveryPartnerCommand(kernel.SystemPrincipal(), oldest.ID(), picked.ID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return h.assigner.Handle(ctx, assign)
}
