package commands_test

import (
	"context"
	"sync"
	"time"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	return ordersArg(args)
}

func (m *MockOrderRepository) GetByRestaurant(ctx context.Context, restaurantID string) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	return ordersArg(args)
}

func (m *MockOrderRepository) GetByDeliveryPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, partnerID)
	return ordersArg(args)
}

func (m *MockOrderRepository) GetPendingWithoutPartner(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args)
}

func ordersArg(args mock.Arguments) ([]*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	return paymentArg(args)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	return paymentArg(args)
}

func (m *MockPaymentRepository) GetByProviderOrderID(ctx context.Context, providerOrderID string) (*payment.Payment, error) {
	args := m.Called(ctx, providerOrderID)
	return paymentArg(args)
}

func (m *MockPaymentRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func paymentArg(args mock.Arguments) (*payment.Payment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	return partnersArg(args)
}

func (m *MockPartnerRepository) GetAllFree(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	return partnersArg(args)
}

func partnersArg(args mock.Arguments) ([]*partner.Partner, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreateOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) Refund(ctx context.Context, providerPaymentID string, amountMinor int64) (string, error) {
	args := m.Called(ctx, providerPaymentID, amountMinor)
	return args.String(0), args.Error(1)
}

type MockSignatureVerifier struct{ mock.Mock }

func (m *MockSignatureVerifier) Verify(providerOrderID, providerPaymentID, signature string) error {
	args := m.Called(providerOrderID, providerPaymentID, signature)
	return args.Error(0)
}

type MockOrderRecorder struct{ mock.Mock }

func (m *MockOrderRecorder) RecordOrderPaid(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRecorder) RecordOrderRefunded(ctx context.Context, orderID kernel.UUID, full bool) error {
	args := m.Called(ctx, orderID, full)
	return args.Error(0)
}

// recordingLocker grants every lock and remembers the keys in order.
type recordingLocker struct {
	mu   sync.Mutex
	keys []string
	held int
	err  error
}

func (l *recordingLocker) Lock(_ context.Context, key string) (ports.Unlock, error) {
	if l.err != nil {
		return nil, l.err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, key)
	l.held++

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held--
	}, nil
}

func (l *recordingLocker) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.keys...)
}

func (l *recordingLocker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}
