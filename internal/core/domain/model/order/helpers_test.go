package order_test

import (
	"testing"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newAddress(t *testing.T) order.Address {
	t.Helper()
	loc, err := kernel.NewLocation(12.9716, 77.5946)
	require.NoError(t, err)
	a, err := order.NewAddress(order.AddressFields{
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		State:      "KA",
		PostalCode: "560001",
		Country:    "IN",
		Location:   loc,
	})
	require.NoError(t, err)
	return a
}

func newDraft(t *testing.T, method kernel.PaymentMethod) order.Draft {
	t.Helper()
	item, err := order.NewItem("m-1", "Paneer Tikka", 2, dec("100.00"), "", "less spicy")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(dec("200.00"), dec("20.00"), dec("11.00"), dec("231.00"))
	require.NoError(t, err)
	return order.Draft{
		CustomerID:      "cust-1",
		RestaurantID:    "rest-1",
		Items:           []order.Item{item},
		Amounts:         amounts,
		PaymentMethod:   method,
		DeliveryAddress: newAddress(t),
	}
}

func newOrder(t *testing.T, method kernel.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD1760443200000123", newDraft(t, method), baseTime)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

// walk moves o forward through the chain up to and including target.
func walk(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	chain := []order.Status{
		order.Confirmed, order.Preparing, order.ReadyForPickup,
		order.PickedUp, order.OutForDelivery,
	}
	for i, s := range chain {
		require.NoError(t, o.Transition(s, "", order.SettleOnDelivery, baseTime.Add(time.Duration(i+1)*time.Minute)))
		if s == target {
			return
		}
	}
}
