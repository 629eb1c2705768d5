package services_test

import (
	"testing"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return l
}

func newOrderAt(t *testing.T, destination kernel.Location) *order.Order {
	t.Helper()
	item, err := order.NewItem("m-1", "Biryani", 1, decimal.RequireFromString("250"), "", "")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(decimal.RequireFromString("250"), decimal.Zero, decimal.Zero, decimal.RequireFromString("250"))
	require.NoError(t, err)
	address, err := order.NewAddress(order.AddressFields{
		Line1: "1 Residency Rd", City: "Bengaluru", State: "KA", PostalCode: "560025", Country: "IN",
		Location: destination,
	})
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD1", order.Draft{
		CustomerID:      "cust-1",
		RestaurantID:    "rest-1",
		Items:           []order.Item{item},
		Amounts:         amounts,
		PaymentMethod:   kernel.PaymentMethodProvider,
		DeliveryAddress: address,
	}, time.Now())
	require.NoError(t, err)
	return o
}

func newPartner(t *testing.T, name string, vehicle partner.Vehicle, at kernel.Location, eligible bool) *partner.Partner {
	t.Helper()
	p, err := partner.RestorePartner(kernel.NewUUID(), name, vehicle, eligible, eligible, at, 0)
	require.NoError(t, err)
	return p
}
