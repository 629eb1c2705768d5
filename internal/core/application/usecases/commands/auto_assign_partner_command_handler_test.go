package commands_test

import (
	"context"
	"testing"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartnerAssigner struct{ mock.Mock }

func (m *MockPartnerAssigner) Handle(ctx context.Context, cmd commands.AssignDeliveryPartnerCommand) (order.Snapshot, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

func TestAutoAssignPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	oldest := newTestOrder(t, kernel.PaymentMethodProvider)
	newer := newTestOrder(t, kernel.PaymentMethodProvider)
	p := newEligiblePartner(t)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	assigner := new(MockPartnerAssigner)

	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	orderRepo.On("GetPendingWithoutPartner", ctx).Return([]*order.Order{oldest, newer}, nil).Once()
	partnerRepo.On("GetAllFree", ctx).Return([]*partner.Partner{p}, nil).Once()
	assigner.On("Handle", ctx, mock.MatchedBy(func(cmd commands.AssignDeliveryPartnerCommand) bool {
		return cmd.OrderID() == oldest.ID() &&
			cmd.PartnerID() == p.ID() &&
			cmd.Principal().Role() == kernel.RoleSystem
	})).Return(order.Snapshot{ID: oldest.ID().String(), DeliveryPartnerID: p.ID().String()}, nil).Once()

	handler := commands.NewAutoAssignPartnerCommandHandler(factory, services.FIFOStrategy{}, assigner)
	snapshot, err := handler.Handle(ctx, commands.NewAutoAssignPartnerCommand())

	require.NoError(t, err)
	assert.Equal(t, p.ID().String(), snapshot.DeliveryPartnerID)
	assigner.AssertExpectations(t)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestAutoAssignPartnerCommandHandler_Handle_NoOrders(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	assigner := new(MockPartnerAssigner)

	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetPendingWithoutPartner", ctx).Return([]*order.Order{}, nil).Once()

	handler := commands.NewAutoAssignPartnerCommandHandler(factory, services.NearestStrategy{}, assigner)
	_, err := handler.Handle(ctx, commands.NewAutoAssignPartnerCommand())

	require.ErrorIs(t, err, commands.ErrNoOrderFound)
	assigner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAutoAssignPartnerCommandHandler_Handle_NoEligiblePartner(t *testing.T) {
	offline, err := partner.RestorePartner(kernel.NewUUID(), "Asha", partner.VehicleCar, true, false, location(t, 12.9, 77.5), 0)
	require.NoError(t, err)

	tests := []struct {
		name     string
		partners []*partner.Partner
	}{
		{"nobody free", []*partner.Partner{}},
		{"nobody eligible", []*partner.Partner{offline}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			orderRepo := new(MockOrderRepository)
			partnerRepo := new(MockPartnerRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)
			assigner := new(MockPartnerAssigner)

			factory.On("Create").Return(uow).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			uow.On("PartnerRepository").Return(partnerRepo).Once()
			orderRepo.On("GetPendingWithoutPartner", ctx).Return([]*order.Order{newTestOrder(t, kernel.PaymentMethodProvider)}, nil).Once()
			partnerRepo.On("GetAllFree", ctx).Return(tt.partners, nil).Once()

			handler := commands.NewAutoAssignPartnerCommandHandler(factory, services.NearestStrategy{}, assigner)
			_, err := handler.Handle(ctx, commands.NewAutoAssignPartnerCommand())

			require.ErrorIs(t, err, commands.ErrNoFreePartnersFound)
			assigner.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}
