package order

import (
	"errors"
	"fmt"

	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrAmountsAreNotConstructed is returned when a zero-value Amounts is used.
var ErrAmountsAreNotConstructed = errs.NewValueIsRequiredError("amounts must be created via NewAmounts constructor")

// Amounts holds the monetary breakdown of an order.
//
// Invariant: total == subtotal + deliveryFee + tax, all non-negative.
type Amounts struct {
	subtotal    decimal.Decimal
	deliveryFee decimal.Decimal
	tax         decimal.Decimal
	total       decimal.Decimal
	guard       guard.ConstructorGuard
}

// NewAmounts validates the breakdown. The caller supplies total explicitly so
// that a client-side mismatch is reported instead of silently corrected.
//
// Example:
//
//	amounts, err := order.NewAmounts(
//	    decimal.RequireFromString("200.00"),
//	    decimal.RequireFromString("20.00"),
//	    decimal.RequireFromString("11.00"),
//	    decimal.RequireFromString("231.00"),
//	)
func NewAmounts(subtotal, deliveryFee, tax, total decimal.Decimal) (Amounts, error) {
	if err := errors.Join(
		nonNegative("subtotal", subtotal),
		nonNegative("delivery fee", deliveryFee),
		nonNegative("tax", tax),
		nonNegative("total", total),
	); err != nil {
		return Amounts{}, err
	}

	expected := subtotal.Add(deliveryFee).Add(tax)
	if !expected.Equal(total) {
		return Amounts{}, errs.NewValueIsInvalidErrorWithCause(
			"total is invalid",
			fmt.Errorf("total %s does not equal subtotal + delivery fee + tax = %s", total, expected),
		)
	}

	return Amounts{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		tax:         tax,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (a Amounts) Validate() error {
	return a.guard.Validate(ErrAmountsAreNotConstructed)
}

func (a Amounts) Subtotal() decimal.Decimal {
	return a.subtotal
}

func (a Amounts) DeliveryFee() decimal.Decimal {
	return a.deliveryFee
}

func (a Amounts) Tax() decimal.Decimal {
	return a.tax
}

func (a Amounts) Total() decimal.Decimal {
	return a.total
}

func nonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is negative", v))
	}
	return nil
}
