package order

import (
	"errors"
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem constructor")

// Item is one order line. It is an immutable value object.
type Item struct {
	menuItemID          string
	name                string
	quantity            int
	unitPrice           decimal.Decimal
	variant             string
	specialInstructions string
	guard               guard.ConstructorGuard
}

// NewItem validates and creates an order line.
//
// Parameters:
//   - menuItemID: catalog identifier (required)
//   - name: display name captured at order time
//   - quantity: must be greater than 0
//   - unitPrice: must not be negative
//   - variant, specialInstructions: optional
func NewItem(
	menuItemID string,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
	variant string,
	specialInstructions string,
) (Item, error) {
	item := Item{
		name:                strings.TrimSpace(name),
		variant:             strings.TrimSpace(variant),
		specialInstructions: strings.TrimSpace(specialInstructions),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) MenuItemID() string {
	return i.menuItemID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Variant() string {
	return i.variant
}

func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}

// Total is unitPrice × quantity.
func (i Item) Total() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setMenuItemID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}
