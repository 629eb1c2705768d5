package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned for a Payment not built by NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is one attempt to collect the total of an order through the
// payment provider. At most one open (PENDING or PROCESSING) payment exists
// per order.
type Payment struct {
	id                kernel.UUID
	orderID           kernel.UUID
	customerID        string
	amount            decimal.Decimal
	currency          string
	method            kernel.PaymentMethod
	status            Status
	providerOrderID   string
	providerPaymentID string
	signature         string
	failureReason     string
	refundAmount      decimal.Decimal
	refundReason      string
	providerRefundID  string
	createdAt         time.Time
	updatedAt         time.Time
	paidAt            *time.Time
	refundedAt        *time.Time
	version           int64

	isConstructed bool
}

// NewPayment creates a PENDING payment for an intent already registered
// with the provider.
//
// Parameters:
//   - id: unique identifier
//   - orderID: the order being paid
//   - customerID: the paying customer
//   - amount: strictly positive, at most two decimal places
//   - method: a provider-routed payment method
//   - providerOrderID: the provider's identifier for the intent
//   - now: creation time
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID string,
	amount decimal.Decimal,
	method kernel.PaymentMethod,
	providerOrderID string,
	now time.Time,
) (*Payment, error) {
	p := &Payment{
		currency:      DefaultCurrency,
		status:        Pending,
		refundAmount:  decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		validID(id),
		validID(orderID),
		p.setCustomerID(customerID),
		p.setAmount(amount),
		p.setMethod(method),
		p.setProviderOrderID(providerOrderID),
	); err != nil {
		return nil, err
	}
	p.id = id
	p.orderID = orderID

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID              { return p.id }
func (p *Payment) OrderID() kernel.UUID         { return p.orderID }
func (p *Payment) CustomerID() string           { return p.customerID }
func (p *Payment) Amount() decimal.Decimal      { return p.amount }
func (p *Payment) Currency() string             { return p.currency }
func (p *Payment) Method() kernel.PaymentMethod { return p.method }
func (p *Payment) Status() Status               { return p.status }
func (p *Payment) ProviderOrderID() string      { return p.providerOrderID }
func (p *Payment) ProviderPaymentID() string    { return p.providerPaymentID }
func (p *Payment) Signature() string            { return p.signature }
func (p *Payment) FailureReason() string        { return p.failureReason }
func (p *Payment) RefundAmount() decimal.Decimal {
	return p.refundAmount
}
func (p *Payment) RefundReason() string     { return p.refundReason }
func (p *Payment) ProviderRefundID() string { return p.providerRefundID }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
func (p *Payment) PaidAt() *time.Time       { return copyTime(p.paidAt) }
func (p *Payment) RefundedAt() *time.Time   { return copyTime(p.refundedAt) }
func (p *Payment) Version() int64           { return p.version }

// CommitVersion is called by a repository after a versioned write succeeded.
func (p *Payment) CommitVersion() {
	p.version++
}

// StartProcessing marks that the customer has begun checkout with the provider.
func (p *Payment) StartProcessing(now time.Time) error {
	return p.moveTo(Processing, now)
}

// IsCompletedWith reports whether the payment was already completed with
// exactly these provider identifiers.
func (p *Payment) IsCompletedWith(providerPaymentID, signature string) bool {
	return p.status == Completed && p.providerPaymentID == providerPaymentID && p.signature == signature
}

// Complete records a verified provider payment.
//
// Returns InvalidTransitionError unless the payment is PENDING or PROCESSING.
// Callers must have verified the signature before calling Complete.
func (p *Payment) Complete(providerPaymentID, signature string, now time.Time) error {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return errs.NewValueIsRequiredError("provider payment id")
	}
	if strings.TrimSpace(signature) == "" {
		return errs.NewValueIsRequiredError("signature")
	}
	if err := p.moveTo(Completed, now); err != nil {
		return err
	}

	paid := now
	p.providerPaymentID = providerPaymentID
	p.signature = signature
	p.paidAt = &paid
	return nil
}

// Fail records a declined payment.
func (p *Payment) Fail(reason string, now time.Time) error {
	if err := p.moveTo(Failed, now); err != nil {
		return err
	}
	p.failureReason = strings.TrimSpace(reason)
	return nil
}

// Cancel abandons an open payment, e.g. when the intent expired.
func (p *Payment) Cancel(reason string, now time.Time) error {
	if err := p.moveTo(Cancelled, now); err != nil {
		return err
	}
	p.failureReason = strings.TrimSpace(reason)
	return nil
}

// Refund records a provider refund of amount. It returns true when the whole
// payment was refunded.
//
// Business rules:
//   - only a COMPLETED payment can be refunded, once
//   - 0 < amount <= payment amount
func (p *Payment) Refund(amount decimal.Decimal, reason string, providerRefundID string, now time.Time) (bool, error) {
	if err := ValidateRefundAmount(p.amount, amount); err != nil {
		return false, err
	}

	full := amount.Equal(p.amount)
	target := PartiallyRefunded
	if full {
		target = Refunded
	}
	if err := p.moveTo(target, now); err != nil {
		return false, err
	}

	refunded := now
	p.refundAmount = amount
	p.refundReason = strings.TrimSpace(reason)
	p.providerRefundID = providerRefundID
	p.refundedAt = &refunded
	return full, nil
}

// ValidateRefundAmount checks 0 < amount <= paid.
func ValidateRefundAmount(paid decimal.Decimal, amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(paid) {
		return errs.NewValueIsOutOfRangeError("refund amount", amount, "0", paid)
	}
	if _, err := ToMinorUnits(amount); err != nil {
		return err
	}
	return nil
}

func (p *Payment) moveTo(target Status, now time.Time) error {
	if !p.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("payment", p.status.String(), target.String())
	}
	p.status = target
	if now.After(p.updatedAt) {
		p.updatedAt = now
	}
	return nil
}

func validID(id kernel.UUID) error {
	return id.Validate()
}

func (p *Payment) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	p.customerID = customerID
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%s is not greater than 0", amount))
	}
	if _, err := ToMinorUnits(amount); err != nil {
		return err
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if !method.IsProviderRouted() {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%s is not settled through the payment provider", method))
	}
	p.method = method
	return nil
}

func (p *Payment) setProviderOrderID(providerOrderID string) error {
	providerOrderID = strings.TrimSpace(providerOrderID)
	if providerOrderID == "" {
		return errs.NewValueIsRequiredError("provider order id")
	}
	p.providerOrderID = providerOrderID
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
