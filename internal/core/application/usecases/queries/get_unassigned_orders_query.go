package queries

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves the assignment queue: orders without a
// delivery partner that can still get one (PENDING through READY_FOR_PICKUP).
//
// Example:
//
//	query, err := NewGetUnassignedOrdersQuery(restaurant)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unassigned orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting a partner\n", len(orders))
type GetUnassignedOrdersQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewGetUnassignedOrdersQuery(principal kernel.Principal) (GetUnassignedOrdersQuery, error) {
	if err := requirePrincipal(principal); err != nil {
		return GetUnassignedOrdersQuery{}, err
	}
	return GetUnassignedOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

func (q GetUnassignedOrdersQuery) Principal() kernel.Principal {
	return q.principal
}
