package commands

import (
	"context"
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/services"
	"foodies/internal/core/ports"
	"foodies/internal/pkg/errs"
)

// maxNumberAttempts bounds the search for a free order number.
const maxNumberAttempts = 5

var ErrOrderNumberUnavailable = errors.New("could not allocate a unique order number")

// CreateOrderCommandHandler places new orders in PENDING status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderNumberGenerator(nil))
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// an order-updates notification labelled PENDING is now on its way
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	numbers    NumberGenerator
	access     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, numbers NumberGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		access:     services.NewAccessPolicy(),
	}
}

// Handle authorizes the principal, allocates a unique order number and
// persists the order. A number taken by a concurrent commit is replaced and
// the order placed again, at most maxNumberAttempts times. The returned
// snapshot is the state that was committed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	draft := cmd.Draft()
	if err := h.access.CanCreateOrder(cmd.Principal(), draft.CustomerID); err != nil {
		return order.Snapshot{}, err
	}

	for range maxNumberAttempts {
		snapshot, err := h.place(ctx, draft)
		if !isNumberTaken(err) {
			return snapshot, err
		}
	}

	return order.Snapshot{}, ErrOrderNumberUnavailable
}

func (h CreateOrderCommandHandler) place(ctx context.Context, draft order.Draft) (order.Snapshot, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := h.allocateNumber(ctx, orderRepo)
	if err != nil {
		return order.Snapshot{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), number, draft, now())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}

func (h CreateOrderCommandHandler) allocateNumber(ctx context.Context, repo ports.OrderRepository) (string, error) {
	for range maxNumberAttempts {
		number := h.numbers.Next()

		taken, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}

	return "", ErrOrderNumberUnavailable
}

func isNumberTaken(err error) bool {
	var invalid *errs.ValueIsInvalidError
	return errors.As(err, &invalid) && invalid.ParamName == order.NumberParam
}
