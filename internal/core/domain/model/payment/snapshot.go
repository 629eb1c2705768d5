package payment

import (
	"errors"
	"time"

	"foodies/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Snapshot is the flat, serialisable form of a Payment.
type Snapshot struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"orderId"`
	CustomerID        string          `json:"customerId"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Method            string          `json:"paymentMethod"`
	Status            string          `json:"status"`
	ProviderOrderID   string          `json:"providerOrderId"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	Signature         string          `json:"-"`
	FailureReason     string          `json:"failureReason,omitempty"`
	RefundAmount      decimal.Decimal `json:"refundAmount"`
	RefundReason      string          `json:"refundReason,omitempty"`
	ProviderRefundID  string          `json:"providerRefundId,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	PaidAt            *time.Time      `json:"paidAt,omitempty"`
	RefundedAt        *time.Time      `json:"refundedAt,omitempty"`
	Version           int64           `json:"version"`
}

func (p *Payment) Snapshot() Snapshot {
	return Snapshot{
		ID:                p.id.String(),
		OrderID:           p.orderID.String(),
		CustomerID:        p.customerID,
		Amount:            p.amount,
		Currency:          p.currency,
		Method:            p.method.String(),
		Status:            p.status.String(),
		ProviderOrderID:   p.providerOrderID,
		ProviderPaymentID: p.providerPaymentID,
		Signature:         p.signature,
		FailureReason:     p.failureReason,
		RefundAmount:      p.refundAmount,
		RefundReason:      p.refundReason,
		ProviderRefundID:  p.providerRefundID,
		CreatedAt:         p.createdAt,
		UpdatedAt:         p.updatedAt,
		PaidAt:            copyTime(p.paidAt),
		RefundedAt:        copyTime(p.refundedAt),
		Version:           p.version,
	}
}

// RestorePayment rebuilds a Payment from persisted state.
func RestorePayment(s Snapshot) (*Payment, error) {
	id, idErr := kernel.UUIDFromString(s.ID)
	orderID, orderErr := kernel.UUIDFromString(s.OrderID)
	method, methodErr := kernel.ParsePaymentMethod(s.Method)
	status, statusErr := ParseStatus(s.Status)
	if err := errors.Join(idErr, orderErr, methodErr, statusErr); err != nil {
		return nil, err
	}

	p, err := NewPayment(id, orderID, s.CustomerID, s.Amount, method, s.ProviderOrderID, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if s.Currency != "" {
		p.currency = s.Currency
	}
	p.status = status
	p.providerPaymentID = s.ProviderPaymentID
	p.signature = s.Signature
	p.failureReason = s.FailureReason
	p.refundAmount = s.RefundAmount
	p.refundReason = s.RefundReason
	p.providerRefundID = s.ProviderRefundID
	p.updatedAt = s.UpdatedAt
	p.paidAt = copyTime(s.PaidAt)
	p.refundedAt = copyTime(s.RefundedAt)
	p.version = s.Version
	return p, nil
}
