package queries_test

import (
	"context"
	"testing"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetByDeliveryPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, partnerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetPendingWithoutPartner(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentReader struct{ mock.Mock }

func (m *MockPaymentReader) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentReader) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockPartnerReader struct{ mock.Mock }

func (m *MockPartnerReader) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

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

func newOrder(t *testing.T, customerID, restaurantID string) *order.Order {
	t.Helper()

	item, err := order.NewItem("menu-1", "Masala Dosa", 1, decimal.RequireFromString("80.00"), "", "")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("20.00"),
		decimal.RequireFromString("4.00"),
		decimal.RequireFromString("104.00"),
	)
	require.NoError(t, err)
	address, err := order.NewAddress(order.AddressFields{
		Line1:      "4 Church Street",
		City:       "Bengaluru",
		State:      "KA",
		PostalCode: "560001",
		Country:    "IN",
		Location:   location(t, 12.975, 77.605),
	})
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD"+kernel.NewUUID().String()[:8], order.Draft{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Items:           []order.Item{item},
		Amounts:         amounts,
		PaymentMethod:   kernel.PaymentMethodProvider,
		DeliveryAddress: address,
	}, time.Now().UTC())
	require.NoError(t, err)
	return o
}
