package commands_test

import (
	"testing"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundFixture struct {
	paymentRepo *MockPaymentRepository
	uow         *MockUoW
	factory     *MockPaymentUoWFactory
	provider    *MockPaymentProvider
	recorder    *MockOrderRecorder
}

func newRefundFixture(p *payment.Payment) refundFixture {
	f := refundFixture{
		paymentRepo: new(MockPaymentRepository),
		uow:         new(MockUoW),
		factory:     new(MockPaymentUoWFactory),
		provider:    new(MockPaymentProvider),
		recorder:    new(MockOrderRecorder),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("PaymentRepository").Return(f.paymentRepo)
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.paymentRepo.On("Get", mock.Anything, p.ID()).Return(p, nil)
	return f
}

func (f refundFixture) handler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(f.factory, &recordingLocker{}, f.provider, f.recorder)
}

func TestRefundPaymentCommandHandler_Handle(t *testing.T) {
	partial := decimal.RequireFromString("100.00")

	tests := []struct {
		name       string
		amount     *decimal.Decimal
		wantMinor  int64
		wantFull   bool
		wantStatus string
	}{
		{"full refund by default", nil, 23100, true, "REFUNDED"},
		{"partial refund", &partial, 10000, false, "PARTIALLY_REFUNDED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newTestOrder(t, kernel.PaymentMethodProvider)
			p := newCompletedPayment(t, o, "order_rzp_1")
			f := newRefundFixture(p)

			f.provider.On("Refund", ctx, "pay_1", tt.wantMinor).Return("rfnd_1", nil).Once()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.paymentRepo.On("Update", ctx, p).Return(nil).Once()
			f.uow.On("Commit", ctx).Return(nil).Once()
			f.recorder.On("RecordOrderRefunded", ctx, o.ID(), tt.wantFull).Return(nil).Once()

			cmd, err := commands.NewRefundPaymentCommand(principal(t, "admin", kernel.RoleAdmin), p.ID(), tt.amount, "customer complaint")
			require.NoError(t, err)

			snapshot, err := f.handler().Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, snapshot.Status)
			assert.Equal(t, "rfnd_1", snapshot.ProviderRefundID)
			assert.Equal(t, "customer complaint", snapshot.RefundReason)
			f.provider.AssertExpectations(t)
			f.recorder.AssertExpectations(t)
		})
	}
}

func TestRefundPaymentCommandHandler_Handle_Rejected(t *testing.T) {
	tooMuch := decimal.RequireFromString("231.01")

	tests := []struct {
		name     string
		complete bool
		amount   *decimal.Decimal
		want     error
	}{
		{"pending payment", false, nil, errs.ErrInvalidTransition},
		{"more than paid", true, &tooMuch, errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newTestOrder(t, kernel.PaymentMethodProvider)
			p := newPendingPayment(t, o, "order_rzp_1")
			if tt.complete {
				require.NoError(t, p.Complete("pay_1", "sig_1", p.CreatedAt()))
			}
			f := newRefundFixture(p)

			cmd, err := commands.NewRefundPaymentCommand(principal(t, "admin", kernel.RoleAdmin), p.ID(), tt.amount, "")
			require.NoError(t, err)

			_, err = f.handler().Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.want)
			f.provider.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
			f.recorder.AssertNotCalled(t, "RecordOrderRefunded", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRefundPaymentCommandHandler_Handle_ProviderError(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, kernel.PaymentMethodProvider)
	p := newCompletedPayment(t, o, "order_rzp_1")
	f := newRefundFixture(p)
	f.provider.On("Refund", ctx, "pay_1", int64(23100)).Return("", errs.NewProviderError("refund", false, nil)).Once()

	cmd, err := commands.NewRefundPaymentCommand(principal(t, "admin", kernel.RoleAdmin), p.ID(), nil, "")
	require.NoError(t, err)

	_, err = f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrProvider)
	assert.Equal(t, payment.Completed, p.Status())
	f.paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRefundPaymentCommandHandler_Handle_CustomerMayNotRefund(t *testing.T) {
	o := newTestOrder(t, kernel.PaymentMethodProvider)
	p := newCompletedPayment(t, o, "order_rzp_1")
	f := newRefundFixture(p)

	cmd, err := commands.NewRefundPaymentCommand(principal(t, "cust-1", kernel.RoleCustomer), p.ID(), nil, "")
	require.NoError(t, err)

	_, err = f.handler().Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAuthorization)
	f.factory.AssertNotCalled(t, "Create")
}

func TestNewRefundPaymentCommand_NonPositiveAmount(t *testing.T) {
	zero := decimal.Zero

	_, err := commands.NewRefundPaymentCommand(principal(t, "admin", kernel.RoleAdmin), kernel.NewUUID(), &zero, "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
