package commands

import (
	"errors"
	"strings"

	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand carries the identifiers the provider returns after a
// checkout together with their signature.
type VerifyPaymentCommand struct {
	providerOrderID   string
	providerPaymentID string
	signature         string

	guard guard.ConstructorGuard
}

func NewVerifyPaymentCommand(providerOrderID, providerPaymentID, signature string) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		providerOrderID:   strings.TrimSpace(providerOrderID),
		providerPaymentID: strings.TrimSpace(providerPaymentID),
		signature:         strings.TrimSpace(signature),
		guard:             guard.NewConstructorGuard(),
	}

	var missing []error
	if cmd.providerOrderID == "" {
		missing = append(missing, errs.NewValueIsRequiredError("provider order id"))
	}
	if cmd.providerPaymentID == "" {
		missing = append(missing, errs.NewValueIsRequiredError("provider payment id"))
	}
	if cmd.signature == "" {
		missing = append(missing, errs.NewValueIsRequiredError("signature"))
	}
	if err := errors.Join(missing...); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return cmd, nil
}

func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

func (c VerifyPaymentCommand) ProviderOrderID() string   { return c.providerOrderID }
func (c VerifyPaymentCommand) ProviderPaymentID() string { return c.providerPaymentID }
func (c VerifyPaymentCommand) Signature() string         { return c.signature }
