package commands_test

import (
	"testing"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func paidOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newTestOrder(t, kernel.PaymentMethodProvider)
	_, err := o.MarkPaid(o.CreatedAt())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestMarkOrderRefundedCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name          string
		full          bool
		wantStatus    order.Status
		wantPayment   order.PaymentStatus
		wantEventName string
	}{
		{"full refund ends the order", true, order.Refunded, order.PaymentRefunded, "REFUNDED"},
		{"partial refund keeps the status", false, order.Pending, order.PaymentPartiallyRefunded, order.LabelPartiallyRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			stored := paidOrder(t)

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
			orderRepo.On("Update", ctx, stored).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Maybe()

			handler := commands.NewMarkOrderRefundedCommandHandler(factory, &recordingLocker{}, order.SettleOnDelivery)
			err := handler.RecordOrderRefunded(ctx, stored.ID(), tt.full)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, stored.Status())
			assert.Equal(t, tt.wantPayment, stored.PaymentStatus())
			require.Len(t, stored.DomainEvents(), 1)
			assert.Equal(t, tt.wantEventName, stored.DomainEvents()[0].(order.Changed).Label)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestMarkOrderRefundedCommandHandler_Handle_Unpaid(t *testing.T) {
	ctx := t.Context()
	stored := newTestOrder(t, kernel.PaymentMethodProvider)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMarkOrderRefundedCommandHandler(factory, &recordingLocker{}, order.SettleOnDelivery)
	err := handler.RecordOrderRefunded(ctx, stored.ID(), true)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, stored.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
