package commands

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand refunds a completed payment. A nil amount refunds the
// whole payment.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	paymentID kernel.UUID
	amount    *decimal.Decimal
	reason    string

	guard guard.ConstructorGuard
}

func NewRefundPaymentCommand(
	principal kernel.Principal,
	paymentID kernel.UUID,
	amount *decimal.Decimal,
	reason string,
) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		principal: principal,
		paymentID: paymentID,
		reason:    strings.TrimSpace(reason),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePrincipal(principal),
		requireID("payment id", paymentID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

func (c RefundPaymentCommand) Principal() kernel.Principal { return c.principal }
func (c RefundPaymentCommand) PaymentID() kernel.UUID      { return c.paymentID }
func (c RefundPaymentCommand) Reason() string              { return c.reason }

// Amount returns the requested amount, or nil for a full refund.
func (c RefundPaymentCommand) Amount() *decimal.Decimal {
	if c.amount == nil {
		return nil
	}
	a := *c.amount
	return &a
}

func (c *RefundPaymentCommand) setAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return nil
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("refund amount", errors.New("must be greater than 0"))
	}

	a := *amount
	c.amount = &a
	return nil
}
