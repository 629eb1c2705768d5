package cmd_test

import (
	"testing"
	"time"

	"foodies/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "manual", cfg.AssignmentStrategy)
	assert.Equal(t, "settle_on_delivery", cfg.CODPolicy)
	assert.Equal(t, 30*time.Minute, cfg.PaymentIntentTTL)
	assert.Equal(t, 256, cfg.NotificationQueueSize)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.RedisAddr)
	assert.InDelta(t, 20.0, cfg.RateLimitRPS, 0.001)
	assert.InDelta(t, 2.0, cfg.VerifyRateLimitRPS, 0.001)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("PAYMENT_INTENT_TTL", "90s")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("ASSIGNMENT_STRATEGY", "Nearest")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cmd.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 90*time.Second, cfg.PaymentIntentTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "nearest", cfg.AssignmentStrategy)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")
	t.Setenv("PAYMENT_INTENT_TTL", "soon")
	t.Setenv("RATE_LIMIT_RPS", "many")

	_, err := cmd.LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "PAYMENT_INTENT_TTL")
	assert.ErrorContains(t, err, "RATE_LIMIT_RPS")
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.Config{StorageDriver: "sqlite", PaymentIntentTTL: -time.Second}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
	assert.ErrorContains(t, err, "JWT_SECRET is not set")
	assert.ErrorContains(t, err, "RAZORPAY_KEY_SECRET is not set")
	assert.ErrorContains(t, err, "PAYMENT_INTENT_TTL must be positive")
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "foodies", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=foodies sslmode=disable", cfg.DSN())
}
