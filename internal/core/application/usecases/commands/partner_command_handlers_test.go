package commands_test

import (
	"testing"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryPartnerCommandHandler_Handle(t *testing.T) {
	t.Run("admin onboards an approved partner", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateDeliveryPartnerCommand(
			principal(t, "admin", kernel.RoleAdmin), " Ravi ", partner.VehicleScooter, location(t, 12.97, 77.59), true,
		)
		require.NoError(t, err)

		partnerRepo := new(MockPartnerRepository)
		uow := new(MockUoW)
		factory := new(MockPartnerUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("PartnerRepository").Return(partnerRepo).Once()
		partnerRepo.On("Add", ctx, mock.MatchedBy(func(p *partner.Partner) bool {
			return p.Name() == "Ravi" && p.IsApproved() && !p.IsAvailable()
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Maybe()

		id, err := commands.NewCreateDeliveryPartnerCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		partnerRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("restaurant may not onboard", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryPartnerCommand(
			principal(t, "rest-1", kernel.RoleRestaurant), "Ravi", partner.VehicleScooter, location(t, 12.97, 77.59), false,
		)
		require.NoError(t, err)

		factory := new(MockPartnerUoWFactory)
		_, err = commands.NewCreateDeliveryPartnerCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAuthorization)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryPartnerCommand(
			principal(t, "admin", kernel.RoleAdmin), "  ", partner.VehicleScooter, location(t, 12.97, 77.59), false,
		)

		require.ErrorIs(t, err, commands.ErrPartnerNameIsRequired)
	})
}

func TestUpdatePartnerCommandHandler_HandleLocation(t *testing.T) {
	ctx := t.Context()
	p := newEligiblePartner(t)
	cmd, err := commands.NewUpdatePartnerLocationCommand(principal(t, p.ID().String(), kernel.RoleDeliveryPartner), p.ID(), 13.0, 77.6)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	factory := new(MockPartnerUoWFactory)
	locker := &recordingLocker{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	partnerRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()

	err = commands.NewUpdatePartnerCommandHandler(factory, locker).HandleLocation(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 13.0, p.Location().Latitude(), 1e-9)
	assert.Equal(t, []string{ports.PartnerLockKey(p.ID().String())}, locker.Keys())
	partnerRepo.AssertExpectations(t)
}

func TestUpdatePartnerCommandHandler_HandleLocation_OtherPartner(t *testing.T) {
	p := newEligiblePartner(t)
	cmd, err := commands.NewUpdatePartnerLocationCommand(principal(t, kernel.NewUUID().String(), kernel.RoleDeliveryPartner), p.ID(), 13.0, 77.6)
	require.NoError(t, err)

	factory := new(MockPartnerUoWFactory)
	err = commands.NewUpdatePartnerCommandHandler(factory, &recordingLocker{}).HandleLocation(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdatePartnerCommandHandler_HandleAvailability(t *testing.T) {
	tests := []struct {
		name          string
		approved      bool
		available     bool
		wantErr       error
		wantAvailable bool
	}{
		{"approved partner goes online", true, true, nil, true},
		{"unapproved partner may go offline", false, false, nil, false},
		{"unapproved partner may not go online", false, true, partner.ErrPartnerIsNotApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			p, err := partner.RestorePartner(kernel.NewUUID(), "Ravi", partner.VehicleBicycle, tt.approved, false, location(t, 12.97, 77.59), 3)
			require.NoError(t, err)
			cmd, err := commands.NewSetPartnerAvailabilityCommand(principal(t, "admin", kernel.RoleAdmin), p.ID(), tt.available)
			require.NoError(t, err)

			partnerRepo := new(MockPartnerRepository)
			uow := new(MockUoW)
			factory := new(MockPartnerUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("PartnerRepository").Return(partnerRepo).Once()
			partnerRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
			partnerRepo.On("Update", ctx, p).Return(nil).Maybe()
			uow.On("Commit", ctx).Return(nil).Maybe()
			uow.On("Rollback", ctx).Return(nil).Maybe()

			err = commands.NewUpdatePartnerCommandHandler(factory, &recordingLocker{}).HandleAvailability(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAvailable, p.IsAvailable())
		})
	}
}
