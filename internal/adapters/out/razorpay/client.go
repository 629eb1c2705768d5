// Package razorpay talks to the Razorpay Orders and Refunds APIs and checks
// checkout signatures.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.razorpay.com"

type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
	// MaxRetries bounds retries of transient order-creation failures.
	MaxRetries uint64
}

// Client implements ports.PaymentProvider.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		log.Warn("razorpay credentials are empty")
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.Named("razorpay"),
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type entityResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder opens a Razorpay order and returns its id. Transient failures
// are retried with exponential backoff; Razorpay deduplicates on receipt.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	log := logger.FromCtx(ctx, c.log).With(
		zap.String("receipt", receipt),
		zap.Int64("amount", amountMinor),
	)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	var out entityResponse
	err := backoff.RetryNotify(func() error {
		return c.post(ctx, "/v1/orders", createOrderRequest{
			Amount:   amountMinor,
			Currency: currency,
			Receipt:  receipt,
		}, &out)
	}, backoff.WithContext(backoff.WithMaxRetries(b, c.cfg.MaxRetries), ctx), func(err error, wait time.Duration) {
		log.Warn("razorpay create order failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	})
	if err != nil {
		log.Error("razorpay create order failed", zap.Error(err))
		return "", providerError("create order", err)
	}

	log.Info("razorpay order created", zap.String("provider_order_id", out.ID))
	return out.ID, nil
}

// Refund refunds amountMinor of a captured payment. It is attempted once,
// since a lost response would otherwise risk a double refund.
func (c *Client) Refund(ctx context.Context, providerPaymentID string, amountMinor int64) (string, error) {
	log := logger.FromCtx(ctx, c.log).With(
		zap.String("provider_payment_id", providerPaymentID),
		zap.Int64("amount", amountMinor),
	)

	var out entityResponse
	if err := c.post(ctx, "/v1/payments/"+providerPaymentID+"/refund", refundRequest{Amount: amountMinor}, &out); err != nil {
		log.Error("razorpay refund failed", zap.Error(err))
		return "", providerError("refund", err)
	}

	log.Info("razorpay refund created", zap.String("provider_refund_id", out.ID))
	return out.ID, nil
}

// statusError is a non-2xx answer from Razorpay.
type statusError struct {
	status      int
	code        string
	description string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("razorpay returned %d %s: %s", e.status, e.code, e.description)
}

func (e *statusError) transient() bool {
	return e.status == http.StatusTooManyRequests || e.status >= http.StatusInternalServerError
}

// post returns a backoff.PermanentError for failures not worth retrying.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.Unmarshal(raw, &e)
		statusErr := &statusError{status: resp.StatusCode, code: e.Error.Code, description: e.Error.Description}
		if statusErr.transient() {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode razorpay response: %w", err))
	}
	return nil
}

func providerError(op string, err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}

	transient := true
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		transient = statusErr.transient()
	}
	if errors.Is(err, context.Canceled) {
		transient = false
	}
	return errs.NewProviderError(op, transient, err)
}
