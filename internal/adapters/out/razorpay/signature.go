package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"foodies/internal/pkg/errs"
)

// Verifier checks checkout signatures: the hex HMAC-SHA256 of
// "<order_id>|<payment_id>" keyed with the API secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(keySecret string) *Verifier {
	return &Verifier{secret: []byte(keySecret)}
}

func (v *Verifier) Verify(providerOrderID string, providerPaymentID string, signature string) error {
	expected := v.Sign(providerOrderID, providerPaymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.ErrSignatureMismatch
	}
	return nil
}

// Sign computes the signature Razorpay would attach.
func (v *Verifier) Sign(providerOrderID string, providerPaymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(providerOrderID + "|" + providerPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
