package logger_test

import (
	"context"
	"testing"

	"foodies/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("Production", func(t *testing.T) {
		l, err := logger.New("production")
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("Development", func(t *testing.T) {
		l, err := logger.New("development")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, logger.RequestIDFrom(ctx))
	assert.Equal(t, "req-1", logger.RequestIDFrom(logger.WithRequestID(ctx, "req-1")))
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	t.Run("with request id", func(t *testing.T) {
		ctx := logger.WithRequestID(context.Background(), "test-request-id-123")

		logger.FromCtx(ctx, base).Info("test message")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.Equal(t, "test message", logs[0].Message)
		assert.Equal(t, "test-request-id-123", logs[0].ContextMap()["request_id"])
	})

	t.Run("without request id", func(t *testing.T) {
		logger.FromCtx(context.Background(), base).Info("no id")

		logs := observed.TakeAll()
		require.Len(t, logs, 1)
		assert.NotContains(t, logs[0].ContextMap(), "request_id")
	})

	t.Run("nil base", func(t *testing.T) {
		assert.NotPanics(t, func() {
			logger.FromCtx(context.Background(), nil).Info("dropped")
		})
	})
}
