// Package paymentrepo persists payment aggregates.
package paymentrepo

import (
	"time"

	"foodies/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
type PaymentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;index"`
	CustomerID        string          `gorm:"size:64"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency          string          `gorm:"size:3"`
	Method            string          `gorm:"size:24"`
	Status            string          `gorm:"size:24;index"`
	ProviderOrderID   string          `gorm:"size:64;uniqueIndex"`
	ProviderPaymentID string          `gorm:"size:64"`
	Signature         string          `gorm:"size:128"`
	FailureReason     string
	RefundAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	RefundReason      string
	ProviderRefundID  string    `gorm:"size:64"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
	PaidAt            *time.Time
	RefundedAt        *time.Time
	Version           int64
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		CustomerID:        aggregate.CustomerID(),
		Amount:            aggregate.Amount(),
		Currency:          aggregate.Currency(),
		Method:            aggregate.Method().String(),
		Status:            aggregate.Status().String(),
		ProviderOrderID:   aggregate.ProviderOrderID(),
		ProviderPaymentID: aggregate.ProviderPaymentID(),
		Signature:         aggregate.Signature(),
		FailureReason:     aggregate.FailureReason(),
		RefundAmount:      aggregate.RefundAmount(),
		RefundReason:      aggregate.RefundReason(),
		ProviderRefundID:  aggregate.ProviderRefundID(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		PaidAt:            aggregate.PaidAt(),
		RefundedAt:        aggregate.RefundedAt(),
		Version:           aggregate.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	return payment.RestorePayment(payment.Snapshot{
		ID:                dto.ID.String(),
		OrderID:           dto.OrderID.String(),
		CustomerID:        dto.CustomerID,
		Amount:            dto.Amount,
		Currency:          dto.Currency,
		Method:            dto.Method,
		Status:            dto.Status,
		ProviderOrderID:   dto.ProviderOrderID,
		ProviderPaymentID: dto.ProviderPaymentID,
		Signature:         dto.Signature,
		FailureReason:     dto.FailureReason,
		RefundAmount:      dto.RefundAmount,
		RefundReason:      dto.RefundReason,
		ProviderRefundID:  dto.ProviderRefundID,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		PaidAt:            dto.PaidAt,
		RefundedAt:        dto.RefundedAt,
		Version:           dto.Version,
	})
}
