package order_test

import (
	"testing"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(" m-1 ", "Dosa", 3, dec("45.50"), "masala", "")

		require.NoError(t, err)
		assert.Equal(t, "m-1", item.MenuItemID())
		assert.True(t, dec("136.50").Equal(item.Total()))
	})

	t.Run("invalid item", func(t *testing.T) {
		_, err := order.NewItem("", "Dosa", 0, dec("-1"), "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "menu item id")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "unit price is invalid")
	})

	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, order.ErrItemIsNotConstructed, order.Item{}.Validate())
	})
}

func TestNewAmounts(t *testing.T) {
	t.Run("total matches", func(t *testing.T) {
		a, err := order.NewAmounts(dec("200.00"), dec("20.00"), dec("11.00"), dec("231"))

		require.NoError(t, err)
		assert.True(t, dec("231.00").Equal(a.Total()))
	})

	t.Run("total mismatch", func(t *testing.T) {
		_, err := order.NewAmounts(dec("200.00"), dec("20.00"), dec("11.00"), dec("230.99"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("negative component", func(t *testing.T) {
		_, err := order.NewAmounts(dec("200.00"), dec("-20.00"), dec("11.00"), dec("191.00"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "delivery fee")
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		a := newAddress(t)

		require.NoError(t, a.Validate())
		assert.Equal(t, "12 MG Road, Bengaluru, KA 560001, IN", a.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := order.NewAddress(order.AddressFields{Line1: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "postal code")
		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}
