package commands

import (
	"context"
	"errors"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// conflictRetries bounds how often a unit of work is replayed after an
// optimistic version conflict.
const conflictRetries = 3

// withLock runs fn while holding key.
func withLock(ctx context.Context, locker ports.Locker, key string, fn func() error) error {
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer unlock()

	return fn()
}

// retryOnConflict replays op while it fails with errs.ErrVersionIsInvalid.
// Any other error stops the loop and is returned as is.
func retryOnConflict(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond

	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(b, conflictRetries), ctx))
}

// requirePrincipal rejects the zero principal.
func requirePrincipal(p kernel.Principal) error {
	if p.Role() == kernel.RoleUnknown || p.ID() == "" {
		return errs.NewValueIsRequiredError("principal")
	}
	return nil
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
