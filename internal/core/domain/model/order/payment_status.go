package order

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// PaymentStatus is the settlement state of an order as seen by the order
// itself. It is driven by payment verification and refunds.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
	PaymentPartiallyRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "UNKNOWN",
		PaymentPending:           "PENDING",
		PaymentPaid:              "PAID",
		PaymentFailed:            "FAILED",
		PaymentRefunded:          "REFUNDED",
		PaymentPartiallyRefunded: "PARTIALLY_REFUNDED",
	}
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s PaymentStatus) Validate() error {
	if s <= PaymentUnknown || s > PaymentPartiallyRefunded {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if status != PaymentUnknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid", fmt.Errorf("%q is not a valid payment status", s))
}
