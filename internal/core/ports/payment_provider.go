package ports

import (
	"context"
)

// PaymentProvider is the external payment service (Razorpay).
// Failures are returned as errs.ProviderError.
type PaymentProvider interface {
	// CreateOrder opens a provider-side order for amountMinor units of
	// currency and returns the provider order id.
	CreateOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error)

	// Refund refunds amountMinor units of a captured provider payment and
	// returns the provider refund id.
	Refund(ctx context.Context, providerPaymentID string, amountMinor int64) (string, error)
}

// SignatureVerifier checks the signature the provider attaches to a
// completed checkout. It returns errs.ErrSignatureMismatch on mismatch.
type SignatureVerifier interface {
	Verify(providerOrderID string, providerPaymentID string, signature string) error
}
