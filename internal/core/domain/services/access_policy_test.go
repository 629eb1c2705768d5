package services_test

import (
	"testing"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func principal(t *testing.T, id string, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(id, role)
	require.NoError(t, err)
	return p
}

func TestAccessPolicy_CanTransition(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := newOrderAt(t, loc(t, 0, 0))
	partnerID := kernel.NewUUID()
	_, err := o.AssignPartner(partnerID, o.CreatedAt())
	require.NoError(t, err)

	restaurant := principal(t, "rest-1", kernel.RoleRestaurant)
	otherRestaurant := principal(t, "rest-2", kernel.RoleRestaurant)
	rider := principal(t, partnerID.String(), kernel.RoleDeliveryPartner)
	otherRider := principal(t, kernel.NewUUID().String(), kernel.RoleDeliveryPartner)
	customer := principal(t, "cust-1", kernel.RoleCustomer)
	admin := principal(t, "admin", kernel.RoleAdmin)

	tests := []struct {
		name    string
		who     kernel.Principal
		target  order.Status
		allowed bool
	}{
		{"restaurant confirms", restaurant, order.Confirmed, true},
		{"restaurant readies", restaurant, order.ReadyForPickup, true},
		{"restaurant cancels", restaurant, order.Cancelled, true},
		{"restaurant cannot deliver", restaurant, order.Delivered, false},
		{"other restaurant cannot confirm", otherRestaurant, order.Confirmed, false},
		{"rider picks up", rider, order.PickedUp, true},
		{"rider delivers", rider, order.Delivered, true},
		{"rider cannot confirm", rider, order.Confirmed, false},
		{"unassigned rider cannot pick up", otherRider, order.PickedUp, false},
		{"customer cancels pending", customer, order.Cancelled, true},
		{"customer cannot confirm", customer, order.Confirmed, false},
		{"admin confirms", admin, order.Confirmed, true},
		{"admin cannot force refund", admin, order.Refunded, false},
		{"system refunds", kernel.SystemPrincipal(), order.Refunded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.CanTransition(tt.who, o, tt.target)
			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrAuthorization)
		})
	}

	t.Run("customer cannot cancel once confirmed", func(t *testing.T) {
		require.NoError(t, o.Transition(order.Confirmed, "", order.SettleOnDelivery, o.CreatedAt()))

		require.ErrorIs(t, policy.CanTransition(customer, o, order.Cancelled), errs.ErrAuthorization)
	})
}

func TestAccessPolicy_Orders(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := newOrderAt(t, loc(t, 0, 0))
	customer := principal(t, "cust-1", kernel.RoleCustomer)
	stranger := principal(t, "cust-2", kernel.RoleCustomer)
	restaurant := principal(t, "rest-1", kernel.RoleRestaurant)
	rider := principal(t, kernel.NewUUID().String(), kernel.RoleDeliveryPartner)

	require.NoError(t, policy.CanCreateOrder(customer, "cust-1"))
	require.ErrorIs(t, policy.CanCreateOrder(stranger, "cust-1"), errs.ErrAuthorization)

	require.NoError(t, policy.CanView(customer, o))
	require.NoError(t, policy.CanView(restaurant, o))
	require.ErrorIs(t, policy.CanView(stranger, o), errs.ErrAuthorization)
	require.ErrorIs(t, policy.CanView(rider, o), errs.ErrAuthorization)

	require.NoError(t, policy.CanAssign(restaurant, o))
	require.ErrorIs(t, policy.CanAssign(customer, o), errs.ErrAuthorization)

	require.ErrorIs(t, policy.CanUpdateLocation(rider, o), errs.ErrAuthorization)
	require.NoError(t, policy.CanUpdateLocation(kernel.SystemPrincipal(), o))

	require.NoError(t, policy.CanList(customer, kernel.RoleCustomer, "cust-1"))
	require.ErrorIs(t, policy.CanList(stranger, kernel.RoleCustomer, "cust-1"), errs.ErrAuthorization)
	require.NoError(t, policy.CanListUnassigned(restaurant))
	require.ErrorIs(t, policy.CanListUnassigned(customer), errs.ErrAuthorization)
}

func TestAccessPolicy_PaymentsAndPartners(t *testing.T) {
	policy := services.NewAccessPolicy()
	customer := principal(t, "cust-1", kernel.RoleCustomer)
	admin := principal(t, "admin", kernel.RoleAdmin)
	rider := principal(t, "p-1", kernel.RoleDeliveryPartner)

	require.NoError(t, policy.CanPay(customer, "cust-1"))
	require.ErrorIs(t, policy.CanPay(customer, "cust-2"), errs.ErrAuthorization)
	require.NoError(t, policy.CanViewPayment(admin, "cust-2"))
	require.NoError(t, policy.CanRefund(admin))
	require.ErrorIs(t, policy.CanRefund(customer), errs.ErrAuthorization)

	require.NoError(t, policy.CanManagePartners(admin))
	require.ErrorIs(t, policy.CanManagePartners(rider), errs.ErrAuthorization)
	require.NoError(t, policy.CanUpdatePartner(rider, "p-1"))
	require.ErrorIs(t, policy.CanUpdatePartner(rider, "p-2"), errs.ErrAuthorization)

	err := policy.CanRefund(customer)
	assert.Contains(t, err.Error(), "CUSTOMER cust-1")
}
