package queries_test

import (
	"testing"

	"foodies/internal/core/application/usecases/queries"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}

	_, err := queries.NewGetOrderQueryHandler(new(MockOrderReader)).Handle(t.Context(), query)

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	o := newOrder(t, "cust-1", "rest-1")

	tests := []struct {
		name      string
		principal kernel.Principal
		wantErr   error
	}{
		{"owning customer", principal(t, "cust-1", kernel.RoleCustomer), nil},
		{"owning restaurant", principal(t, "rest-1", kernel.RoleRestaurant), nil},
		{"admin", principal(t, "admin", kernel.RoleAdmin), nil},
		{"other customer", principal(t, "cust-2", kernel.RoleCustomer), errs.ErrAuthorization},
		{"unassigned partner", principal(t, kernel.NewUUID().String(), kernel.RoleDeliveryPartner), errs.ErrAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			orders := new(MockOrderReader)
			orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

			query, err := queries.NewGetOrderQuery(tt.principal, o.ID())
			require.NoError(t, err)

			snapshot, err := queries.NewGetOrderQueryHandler(orders).Handle(ctx, query)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, o.Snapshot(), snapshot)
		})
	}
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	orders := new(MockOrderReader)
	orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	query, err := queries.NewGetOrderQuery(principal(t, "admin", kernel.RoleAdmin), id)
	require.NoError(t, err)

	_, err = queries.NewGetOrderQueryHandler(orders).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrdersQueryHandler_Handle(t *testing.T) {
	first := newOrder(t, "cust-1", "rest-1")
	second := newOrder(t, "cust-1", "rest-2")
	partnerID := kernel.NewUUID()

	t.Run("customer lists own orders in insertion order", func(t *testing.T) {
		ctx := t.Context()
		orders := new(MockOrderReader)
		orders.On("GetByCustomer", ctx, "cust-1").Return([]*order.Order{first, second}, nil).Once()

		query, err := queries.NewGetOrdersByCustomerQuery(principal(t, "cust-1", kernel.RoleCustomer), " cust-1 ")
		require.NoError(t, err)

		result, err := queries.NewGetOrdersQueryHandler(orders).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, first.ID().String(), result[0].ID)
		assert.Equal(t, second.ID().String(), result[1].ID)
	})

	t.Run("restaurant lists own orders", func(t *testing.T) {
		ctx := t.Context()
		orders := new(MockOrderReader)
		orders.On("GetByRestaurant", ctx, "rest-1").Return([]*order.Order{first}, nil).Once()

		query, err := queries.NewGetOrdersByRestaurantQuery(principal(t, "rest-1", kernel.RoleRestaurant), "rest-1")
		require.NoError(t, err)

		result, err := queries.NewGetOrdersQueryHandler(orders).Handle(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("admin lists a partner's orders", func(t *testing.T) {
		ctx := t.Context()
		orders := new(MockOrderReader)
		orders.On("GetByDeliveryPartner", ctx, partnerID).Return([]*order.Order{}, nil).Once()

		query, err := queries.NewGetOrdersByDeliveryPartnerQuery(principal(t, "admin", kernel.RoleAdmin), partnerID)
		require.NoError(t, err)

		result, err := queries.NewGetOrdersQueryHandler(orders).Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
		orders.AssertExpectations(t)
	})

	t.Run("customer may not list another customer", func(t *testing.T) {
		orders := new(MockOrderReader)

		query, err := queries.NewGetOrdersByCustomerQuery(principal(t, "cust-2", kernel.RoleCustomer), "cust-1")
		require.NoError(t, err)

		_, err = queries.NewGetOrdersQueryHandler(orders).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrAuthorization)
		orders.AssertNotCalled(t, "GetByCustomer", mock.Anything, mock.Anything)
	})

	t.Run("blank subject", func(t *testing.T) {
		_, err := queries.NewGetOrdersByRestaurantQuery(principal(t, "admin", kernel.RoleAdmin), "  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetUnassignedOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("restaurant sees the queue", func(t *testing.T) {
		ctx := t.Context()
		waiting := newOrder(t, "cust-1", "rest-1")
		orders := new(MockOrderReader)
		orders.On("GetPendingWithoutPartner", ctx).Return([]*order.Order{waiting}, nil).Once()

		query, err := queries.NewGetUnassignedOrdersQuery(principal(t, "rest-1", kernel.RoleRestaurant))
		require.NoError(t, err)

		result, err := queries.NewGetUnassignedOrdersQueryHandler(orders).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Empty(t, result[0].DeliveryPartnerID)
	})

	t.Run("customer does not", func(t *testing.T) {
		orders := new(MockOrderReader)

		query, err := queries.NewGetUnassignedOrdersQuery(principal(t, "cust-1", kernel.RoleCustomer))
		require.NoError(t, err)

		_, err = queries.NewGetUnassignedOrdersQueryHandler(orders).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrAuthorization)
	})

	t.Run("missing principal", func(t *testing.T) {
		_, err := queries.NewGetUnassignedOrdersQuery(kernel.Principal{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
