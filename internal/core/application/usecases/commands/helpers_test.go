package commands_test

import (
	"testing"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var orderTotal = decimal.RequireFromString("231.00")

func principal(t *testing.T, id string, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(id, role)
	require.NoError(t, err)
	return p
}

func location(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return l
}

// newDraft is two plates of 100.00 with 20.00 delivery and 11.00 tax.
func newDraft(t *testing.T, method kernel.PaymentMethod) order.Draft {
	t.Helper()

	item, err := order.NewItem("menu-1", "Paneer Tikka", 2, decimal.RequireFromString("100.00"), "", "")
	require.NoError(t, err)

	amounts, err := order.NewAmounts(
		decimal.RequireFromString("200.00"),
		decimal.RequireFromString("20.00"),
		decimal.RequireFromString("11.00"),
		orderTotal,
	)
	require.NoError(t, err)

	address, err := order.NewAddress(order.AddressFields{
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		State:      "KA",
		PostalCode: "560001",
		Country:    "IN",
		Location:   location(t, 12.9716, 77.5946),
	})
	require.NoError(t, err)

	return order.Draft{
		CustomerID:      "cust-1",
		RestaurantID:    "rest-1",
		Items:           []order.Item{item},
		Amounts:         amounts,
		PaymentMethod:   method,
		DeliveryAddress: address,
	}
}

func newTestOrder(t *testing.T, method kernel.PaymentMethod) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "ORD1", newDraft(t, method), time.Now().UTC())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

// clone returns an independent copy, as a repository would on every Get.
func clone(t *testing.T, o *order.Order) *order.Order {
	t.Helper()

	c, err := order.RestoreOrder(o.Snapshot())
	require.NoError(t, err)
	return c
}

func newEligiblePartner(t *testing.T) *partner.Partner {
	t.Helper()

	p, err := partner.RestorePartner(kernel.NewUUID(), "Ravi", partner.VehicleScooter, true, true, location(t, 12.97, 77.59), 0)
	require.NoError(t, err)
	return p
}

func newPendingPayment(t *testing.T, o *order.Order, providerOrderID string) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), o.CustomerID(), o.Total(), o.PaymentMethod(), providerOrderID, time.Now().UTC())
	require.NoError(t, err)
	return p
}

func newCompletedPayment(t *testing.T, o *order.Order, providerOrderID string) *payment.Payment {
	t.Helper()

	p := newPendingPayment(t, o, providerOrderID)
	require.NoError(t, p.Complete("pay_1", "sig_1", time.Now().UTC()))
	return p
}
