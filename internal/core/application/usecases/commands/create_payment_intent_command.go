package commands

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand opens a provider checkout for an order.
// The amount must equal the order total; it is re-checked against the
// stored order by the handler.
//
// Example:
//
//	cmd, err := NewCreatePaymentIntentCommand(customer, orderID, "cust-1", decimal.RequireFromString("231.00"))
//	if err != nil {
//	    return err
//	}
//	intent, err := handler.Handle(ctx, cmd)
//	// intent.ProviderOrderID goes to the checkout widget
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	principal  kernel.Principal
	orderID    kernel.UUID
	customerID string
	amount     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreatePaymentIntentCommand(
	principal kernel.Principal,
	orderID kernel.UUID,
	customerID string,
	amount decimal.Decimal,
) (CreatePaymentIntentCommand, error) {
	cmd := CreatePaymentIntentCommand{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirePrincipal(principal),
		requireID("order id", orderID),
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
	); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return cmd, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) Principal() kernel.Principal { return c.principal }
func (c CreatePaymentIntentCommand) OrderID() kernel.UUID        { return c.orderID }
func (c CreatePaymentIntentCommand) CustomerID() string          { return c.customerID }
func (c CreatePaymentIntentCommand) Amount() decimal.Decimal     { return c.amount }

func (c *CreatePaymentIntentCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}

func (c *CreatePaymentIntentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0"))
	}

	c.amount = amount
	return nil
}
