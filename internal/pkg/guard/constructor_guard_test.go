package guard_test

import (
	"errors"
	"testing"
	"time"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("receipt must be created via NewReceipt")

	t.Run("constructed", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value reports the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Same(t, notConstructed, g.Validate(notConstructed))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_SurvivesCopies(t *testing.T) {
	amounts, err := order.NewAmounts(
		decimal.RequireFromString("200.00"),
		decimal.RequireFromString("20.00"),
		decimal.RequireFromString("11.00"),
		decimal.RequireFromString("231.00"),
	)
	require.NoError(t, err)

	copied := amounts
	held := struct{ amounts order.Amounts }{amounts: amounts}

	require.NoError(t, copied.Validate())
	require.NoError(t, held.amounts.Validate())
}

func TestConstructorGuard_DomainValues(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"amounts", order.Amounts{}.Validate, order.ErrAmountsAreNotConstructed},
		{"item", order.Item{}.Validate, order.ErrItemIsNotConstructed},
		{"address", order.Address{}.Validate, order.ErrAddressIsNotConstructed},
		{"location", kernel.Location{}.Validate, kernel.ErrLocationIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()

			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestConstructorGuard_ZeroValuesRejectedByNewOrder(t *testing.T) {
	item, err := order.NewItem("m-1", "Masala Dosa", 2, decimal.RequireFromString("100.00"), "", "")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(
		decimal.RequireFromString("200.00"),
		decimal.RequireFromString("20.00"),
		decimal.RequireFromString("11.00"),
		decimal.RequireFromString("231.00"),
	)
	require.NoError(t, err)
	location, err := kernel.NewLocation(12.975, 77.605)
	require.NoError(t, err)
	address, err := order.NewAddress(order.AddressFields{
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		State:      "KA",
		PostalCode: "560001",
		Country:    "IN",
		Location:   location,
	})
	require.NoError(t, err)

	draft := func() order.Draft {
		return order.Draft{
			CustomerID:      "cust-1",
			RestaurantID:    "rest-1",
			Items:           []order.Item{item},
			Amounts:         amounts,
			PaymentMethod:   kernel.PaymentMethodProvider,
			DeliveryAddress: address,
		}
	}

	_, err = order.NewOrder(kernel.NewUUID(), "ORD1", draft(), time.Now().UTC())
	require.NoError(t, err)

	t.Run("zero amounts", func(t *testing.T) {
		d := draft()
		d.Amounts = order.Amounts{}

		_, err := order.NewOrder(kernel.NewUUID(), "ORD1", d, time.Now().UTC())

		assert.ErrorIs(t, err, order.ErrAmountsAreNotConstructed)
	})

	t.Run("zero item", func(t *testing.T) {
		d := draft()
		d.Items = []order.Item{item, {}}

		_, err := order.NewOrder(kernel.NewUUID(), "ORD1", d, time.Now().UTC())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("zero address", func(t *testing.T) {
		d := draft()
		d.DeliveryAddress = order.Address{}

		_, err := order.NewOrder(kernel.NewUUID(), "ORD1", d, time.Now().UTC())

		assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})
}

func TestConstructorGuard_ZeroValueCommands(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"create order", commands.CreateOrderCommand{}.Validate, commands.ErrCreateOrderCommandIsNotConstructed},
		{"update order status", commands.UpdateOrderStatusCommand{}.Validate, commands.ErrUpdateOrderStatusCommandIsNotConstructed},
		{"assign partner", commands.AssignDeliveryPartnerCommand{}.Validate, commands.ErrAssignDeliveryPartnerCommandIsNotConstructed},
		{"auto assign", commands.AutoAssignPartnerCommand{}.Validate, commands.ErrAutoAssignPartnerCommandIsNotConstructed},
		{"refund payment", commands.RefundPaymentCommand{}.Validate, commands.ErrRefundPaymentCommandIsNotConstructed},
		{"expire payments", commands.ExpirePaymentsCommand{}.Validate, commands.ErrExpirePaymentsCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}

	t.Run("constructed", func(t *testing.T) {
		cmd, err := commands.NewExpirePaymentsCommand(30 * time.Minute)
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.NoError(t, commands.NewAutoAssignPartnerCommand().Validate())
	})
}
