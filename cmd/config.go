package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	AppEnv   string

	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string

	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string

	JWTSecret string

	AssignmentStrategy string
	CODPolicy          string
	PaymentIntentTTL   time.Duration

	NotificationQueueSize int
	KafkaBrokers          []string
	KafkaTopicPrefix      string
	RedisAddr             string

	RateLimitRPS       float64
	VerifyRateLimitRPS float64
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when it exists; variables already
// set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errList []error
	cfg := Config{
		HTTPPort: env("HTTP_PORT", "8080"),
		AppEnv:   env("APP_ENV", "development"),

		StorageDriver: strings.ToLower(env("STORAGE_DRIVER", StoragePostgres)),
		DBHost:        env("DB_HOST", "localhost"),
		DBPort:        env("DB_PORT", "5432"),
		DBUser:        env("DB_USER", "postgres"),
		DBPassword:    env("DB_PASSWORD", ""),
		DBName:        env("DB_NAME", "foodies"),
		DBSslMode:     env("DB_SSLMODE", "disable"),

		RazorpayBaseURL:   env("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		RazorpayKeyID:     env("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: env("RAZORPAY_KEY_SECRET", ""),

		JWTSecret: env("JWT_SECRET", ""),

		AssignmentStrategy: strings.ToLower(env("ASSIGNMENT_STRATEGY", "manual")),
		CODPolicy:          env("COD_POLICY", "settle_on_delivery"),

		KafkaBrokers:     splitList(env("KAFKA_BROKERS", "")),
		KafkaTopicPrefix: env("KAFKA_TOPIC_PREFIX", "foodies."),
		RedisAddr:        env("REDIS_ADDR", ""),
	}

	var err error
	if cfg.PaymentIntentTTL, err = time.ParseDuration(env("PAYMENT_INTENT_TTL", "30m")); err != nil {
		errList = append(errList, fmt.Errorf("PAYMENT_INTENT_TTL: %w", err))
	}
	if cfg.NotificationQueueSize, err = strconv.Atoi(env("NOTIFICATION_QUEUE_SIZE", "256")); err != nil {
		errList = append(errList, fmt.Errorf("NOTIFICATION_QUEUE_SIZE: %w", err))
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(env("RATE_LIMIT_RPS", "20"), 64); err != nil {
		errList = append(errList, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	}
	if cfg.VerifyRateLimitRPS, err = strconv.ParseFloat(env("VERIFY_RATE_LIMIT_RPS", "2"), 64); err != nil {
		errList = append(errList, fmt.Errorf("VERIFY_RATE_LIMIT_RPS: %w", err))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var errList []error

	if c.StorageDriver != StoragePostgres && c.StorageDriver != StorageMemory {
		errList = append(errList, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q",
			StoragePostgres, StorageMemory, c.StorageDriver))
	}
	if c.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is not set"))
	}
	if c.RazorpayKeySecret == "" {
		errList = append(errList, errors.New("RAZORPAY_KEY_SECRET is not set"))
	}
	if c.PaymentIntentTTL <= 0 {
		errList = append(errList, errors.New("PAYMENT_INTENT_TTL must be positive"))
	}

	return errors.Join(errList...)
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
