package payment

import (
	"fmt"

	"foodies/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency every payment is taken in.
const DefaultCurrency = "INR"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts an amount in rupees to paise. Amounts with more than
// two decimal places are rejected rather than rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Mul(hundred)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s has more than two decimal places", amount))
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts paise back to rupees.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
