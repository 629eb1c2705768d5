package order

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// CashOnDeliveryPolicy decides how a cash-on-delivery order may reach
// DELIVERED without a provider-confirmed payment.
type CashOnDeliveryPolicy int

const (
	// SettleOnDelivery lets a cash-on-delivery order be delivered while
	// unpaid; its payment status becomes PAID at delivery time.
	SettleOnDelivery CashOnDeliveryPolicy = iota
	// RequirePrepayment treats cash on delivery like any other method:
	// DELIVERED requires PAID.
	RequirePrepayment
)

func (p CashOnDeliveryPolicy) String() string {
	if p == RequirePrepayment {
		return "require_prepayment"
	}
	return "settle_on_delivery"
}

func ParseCashOnDeliveryPolicy(s string) (CashOnDeliveryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "settle_on_delivery":
		return SettleOnDelivery, nil
	case "require_prepayment":
		return RequirePrepayment, nil
	default:
		return SettleOnDelivery, errs.NewValueIsInvalidErrorWithCause(
			"cash on delivery policy", fmt.Errorf("%q is not a known policy", s))
	}
}
