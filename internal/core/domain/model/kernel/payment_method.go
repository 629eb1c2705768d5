package kernel

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	// PaymentMethodProvider is a checkout hosted by the external payment provider.
	PaymentMethodProvider
	PaymentMethodCashOnDelivery
	PaymentMethodWallet
	PaymentMethodUPI
	PaymentMethodCard
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:        "UNKNOWN",
		PaymentMethodProvider:       "PROVIDER",
		PaymentMethodCashOnDelivery: "CASH_ON_DELIVERY",
		PaymentMethodWallet:         "WALLET",
		PaymentMethodUPI:            "UPI",
		PaymentMethodCard:           "CARD",
	}
}

func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects PaymentMethodUnknown and out-of-range values.
func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentMethodCard {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// IsProviderRouted is true for methods settled through the payment provider.
// Cash on delivery is settled by the delivery partner at the door.
func (m PaymentMethod) IsProviderRouted() bool {
	switch m {
	case PaymentMethodProvider, PaymentMethodWallet, PaymentMethodUPI, PaymentMethodCard:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod maps a method name to a PaymentMethod. "RAZORPAY" is
// accepted as an alias of PROVIDER.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if strings.EqualFold(s, "RAZORPAY") {
		return PaymentMethodProvider, nil
	}
	for m, name := range getPaymentMethodStrings() {
		if m != PaymentMethodUnknown && strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a known payment method", s))
}
