package services_test

import (
	"testing"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/services"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestStrategy_Pick(t *testing.T) {
	destination := loc(t, 12.9716, 77.5946)
	o := newOrderAt(t, destination)

	t.Run("should pick partner with shortest travel time", func(t *testing.T) {
		far := newPartner(t, "Far", partner.VehicleMotorbike, loc(t, 13.10, 77.70), true)
		near := newPartner(t, "Near", partner.VehicleBicycle, loc(t, 12.975, 77.597), true)
		mid := newPartner(t, "Mid", partner.VehicleScooter, loc(t, 13.00, 77.62), true)

		picked, err := services.NearestStrategy{}.Pick(o, []*partner.Partner{far, near, mid})

		require.NoError(t, err)
		assert.True(t, picked.IsEqual(near))
	})

	t.Run("vehicle speed matters", func(t *testing.T) {
		// Same distance, the motorbike arrives first.
		bike := newPartner(t, "Bike", partner.VehicleBicycle, loc(t, 13.0, 77.5946), true)
		moto := newPartner(t, "Moto", partner.VehicleMotorbike, loc(t, 13.0, 77.5946), true)

		picked, err := services.NearestStrategy{}.Pick(o, []*partner.Partner{bike, moto})

		require.NoError(t, err)
		assert.True(t, picked.IsEqual(moto))
	})

	t.Run("should skip ineligible partners", func(t *testing.T) {
		offline := newPartner(t, "Offline", partner.VehicleCar, destination, false)
		online := newPartner(t, "Online", partner.VehicleCar, loc(t, 13.0, 77.6), true)

		picked, err := services.NearestStrategy{}.Pick(o, []*partner.Partner{offline, online})

		require.NoError(t, err)
		assert.True(t, picked.IsEqual(online))
	})

	t.Run("should fail when nobody is eligible", func(t *testing.T) {
		_, err := services.NearestStrategy{}.Pick(o, []*partner.Partner{newPartner(t, "Off", partner.VehicleCar, destination, false)})
		require.ErrorIs(t, err, services.ErrPartnerNotFound)

		_, err = services.NearestStrategy{}.Pick(o, nil)
		require.ErrorIs(t, err, services.ErrPartnerNotFound)
	})

	t.Run("should fail for invalid order", func(t *testing.T) {
		_, err := services.NearestStrategy{}.Pick(&order.Order{}, nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestFIFOStrategy_Pick(t *testing.T) {
	o := newOrderAt(t, loc(t, 0, 0))
	off := newPartner(t, "Off", partner.VehicleCar, loc(t, 0, 0), false)
	first := newPartner(t, "First", partner.VehicleCar, loc(t, 10, 10), true)
	second := newPartner(t, "Second", partner.VehicleCar, loc(t, 0, 0), true)

	picked, err := services.FIFOStrategy{}.Pick(o, []*partner.Partner{off, first, second})

	require.NoError(t, err)
	assert.True(t, picked.IsEqual(first))

	_, err = services.FIFOStrategy{}.Pick(o, []*partner.Partner{off})
	require.ErrorIs(t, err, services.ErrPartnerNotFound)
}

func TestManualStrategy_Pick(t *testing.T) {
	o := newOrderAt(t, loc(t, 0, 0))
	chosen := newPartner(t, "Chosen", partner.VehicleScooter, loc(t, 5, 5), true)
	other := newPartner(t, "Other", partner.VehicleScooter, loc(t, 0, 0), true)

	t.Run("should pick the chosen partner", func(t *testing.T) {
		picked, err := services.NewManualStrategy(chosen.ID()).Pick(o, []*partner.Partner{other, chosen})

		require.NoError(t, err)
		assert.True(t, picked.IsEqual(chosen))
	})

	t.Run("unknown partner is an authorization failure", func(t *testing.T) {
		_, err := services.NewManualStrategy(kernel.NewUUID()).Pick(o, []*partner.Partner{other, chosen})

		require.ErrorIs(t, err, errs.ErrAuthorization)
		assert.Contains(t, err.Error(), "unknown delivery partner")
	})

	t.Run("ineligible partner is an authorization failure", func(t *testing.T) {
		offline := newPartner(t, "Offline", partner.VehicleScooter, loc(t, 0, 0), false)

		_, err := services.NewManualStrategy(offline.ID()).Pick(o, []*partner.Partner{offline})

		require.ErrorIs(t, err, errs.ErrAuthorization)
	})
}

func TestNewAssignmentStrategy(t *testing.T) {
	s, err := services.NewAssignmentStrategy("Nearest")
	require.NoError(t, err)
	assert.Equal(t, services.StrategyNearest, s.Name())

	s, err = services.NewAssignmentStrategy("fifo")
	require.NoError(t, err)
	assert.Equal(t, services.StrategyFIFO, s.Name())

	_, err = services.NewAssignmentStrategy(services.StrategyManual)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
