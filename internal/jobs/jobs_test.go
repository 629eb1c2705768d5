package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodies/internal/core/application/usecases/commands"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockPartnerAutoAssigner struct{ mock.Mock }

func (m *MockPartnerAutoAssigner) Handle(ctx context.Context, cmd commands.AutoAssignPartnerCommand) (order.Snapshot, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

type MockPaymentExpirer struct{ mock.Mock }

func (m *MockPaymentExpirer) Handle(ctx context.Context, cmd commands.ExpirePaymentsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestPartnerAssignmentJob_RunOnce(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  order.Snapshot
		err       error
		wantError int
		wantInfo  int
	}{
		{name: "assigned", snapshot: order.Snapshot{ID: "o-1", DeliveryPartnerID: "p-1"}, wantInfo: 1},
		{name: "no orders", err: commands.ErrNoOrderFound},
		{name: "no partners", err: commands.ErrNoFreePartnersFound},
		{name: "failure", err: errors.New("boom"), wantError: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			handler := &MockPartnerAutoAssigner{}
			handler.On("Handle", mock.Anything, mock.Anything).Return(tt.snapshot, tt.err).Once()

			jobs.NewPartnerAssignmentJob(handler, "", zap.New(core)).RunOnce(t.Context())

			handler.AssertExpectations(t)
			assert.Equal(t, tt.wantError, logs.FilterMessage("partner assignment job failed").Len())
			assert.Equal(t, tt.wantInfo, logs.FilterMessage("partner assigned").Len())
		})
	}
}

func TestPaymentExpiryJob_RunOnce(t *testing.T) {
	handler := &MockPaymentExpirer{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpirePaymentsCommand) bool {
		return cmd.OlderThan() == 30*time.Minute
	})).Return(2, nil).Once()

	expired := jobs.NewPaymentExpiryJob(handler, 30*time.Minute, "", zap.NewNop()).RunOnce(t.Context())

	assert.Equal(t, 2, expired)
	handler.AssertExpectations(t)
}

func TestPaymentExpiryJob_RunOnceLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := &MockPaymentExpirer{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("storage down")).Once()

	expired := jobs.NewPaymentExpiryJob(handler, time.Minute, "", zap.New(core)).RunOnce(t.Context())

	assert.Equal(t, 1, expired)
	assert.Equal(t, 1, logs.FilterMessage("payment expiry job failed").Len())
}

func TestJobManager_StartAndStop(t *testing.T) {
	assigner := &MockPartnerAutoAssigner{}
	assigner.On("Handle", mock.Anything, mock.Anything).Return(order.Snapshot{}, commands.ErrNoOrderFound).Maybe()
	expirer := &MockPaymentExpirer{}
	expirer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	manager := jobs.NewJobManager(
		jobs.NewPartnerAssignmentJob(assigner, "", zap.NewNop()),
		jobs.NewPaymentExpiryJob(expirer, time.Minute, "", zap.NewNop()),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailsOnBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(
		jobs.NewPartnerAssignmentJob(&MockPartnerAutoAssigner{}, "", zap.NewNop()),
		jobs.NewPaymentExpiryJob(&MockPaymentExpirer{}, time.Minute, "not a schedule", zap.NewNop()),
	)

	assert.Error(t, manager.StartAll())
}

func TestJobManager_SkipsMissingJobs(t *testing.T) {
	manager := jobs.NewJobManager(nil, jobs.NewPaymentExpiryJob(&MockPaymentExpirer{}, time.Minute, "", zap.NewNop()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestPaymentExpiryJob_StartRejectsNonPositiveTTL(t *testing.T) {
	job := jobs.NewPaymentExpiryJob(&MockPaymentExpirer{}, 0, "", zap.NewNop())

	assert.Error(t, job.Start())
}
