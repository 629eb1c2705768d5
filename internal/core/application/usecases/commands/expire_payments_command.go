package commands

import (
	"errors"
	"time"

	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

var ErrExpirePaymentsCommandIsNotConstructed = errors.New(
	"ExpirePaymentsCommand must be created via NewExpirePaymentsCommand constructor",
)

// ExpirePaymentsCommand cancels PENDING payments older than a TTL. Issued by
// the payment expiry job.
type ExpirePaymentsCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewExpirePaymentsCommand(olderThan time.Duration) (ExpirePaymentsCommand, error) {
	if olderThan <= 0 {
		return ExpirePaymentsCommand{}, errs.NewValueIsOutOfRangeError("payment ttl", olderThan, "1ns", "any")
	}

	return ExpirePaymentsCommand{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpirePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePaymentsCommandIsNotConstructed)
}

func (c ExpirePaymentsCommand) OlderThan() time.Duration {
	return c.olderThan
}
