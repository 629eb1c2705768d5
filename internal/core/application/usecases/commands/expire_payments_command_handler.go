package commands

import (
	"context"
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/payment"
	"foodies/internal/core/ports"
)

// ExpirePaymentsCommandHandler cancels stale payment intents one by one,
// each under its payment lock so a concurrent verification wins or loses
// cleanly.
type ExpirePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	locker     ports.Locker
}

func NewExpirePaymentsCommandHandler(uowFactory PaymentUoWFactory, locker ports.Locker) ExpirePaymentsCommandHandler {
	return ExpirePaymentsCommandHandler{uowFactory: uowFactory, locker: locker}
}

// Handle returns how many payments were cancelled. Payments that could not
// be cancelled are reported in the joined error; the others still expire.
func (h ExpirePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	stale, err := h.uowFactory.Create().PaymentRepository().GetAllPendingCreatedBefore(ctx, now().Add(-cmd.OlderThan()))
	if err != nil {
		return 0, err
	}

	var (
		expired int
		errList []error
	)
	for _, p := range stale {
		cancelled, expErr := h.expire(ctx, p.ID(), p.ProviderOrderID())
		if expErr != nil {
			errList = append(errList, expErr)
			continue
		}
		if cancelled {
			expired++
		}
	}

	return expired, errors.Join(errList...)
}

func (h ExpirePaymentsCommandHandler) expire(ctx context.Context, id kernel.UUID, providerOrderID string) (bool, error) {
	var cancelled bool
	err := withLock(ctx, h.locker, ports.PaymentLockKey(providerOrderID), func() error {
		return retryOnConflict(ctx, func() error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			paymentRepo := uow.PaymentRepository()

			p, err := paymentRepo.Get(ctx, id)
			if err != nil {
				return err
			}
			if p.Status() != payment.Pending {
				return nil
			}

			if err = p.Cancel("payment intent expired", now()); err != nil {
				return err
			}

			if err = paymentRepo.Update(ctx, p); err != nil {
				return err
			}

			if err = uow.Commit(ctx); err != nil {
				return err
			}

			cancelled = true
			return nil
		})
	})

	return cancelled, err
}
