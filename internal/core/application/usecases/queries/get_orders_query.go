package queries

import (
	"errors"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via one of the NewGetOrdersBy... constructors",
)

// GetOrdersQuery lists the orders of one participant: a customer, a
// restaurant or a delivery partner. Role tells which.
//
// Example:
//
//	query, err := NewGetOrdersByCustomerQuery(principal, "cust-1")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	principal kernel.Principal
	role      kernel.Role
	subjectID string

	guard guard.ConstructorGuard
}

func NewGetOrdersByCustomerQuery(principal kernel.Principal, customerID string) (GetOrdersQuery, error) {
	return newGetOrdersQuery(principal, kernel.RoleCustomer, "customer id", customerID)
}

func NewGetOrdersByRestaurantQuery(principal kernel.Principal, restaurantID string) (GetOrdersQuery, error) {
	return newGetOrdersQuery(principal, kernel.RoleRestaurant, "restaurant id", restaurantID)
}

func NewGetOrdersByDeliveryPartnerQuery(principal kernel.Principal, partnerID kernel.UUID) (GetOrdersQuery, error) {
	if err := errors.Join(requirePrincipal(principal), requireID("partner id", partnerID)); err != nil {
		return GetOrdersQuery{}, err
	}
	return newGetOrdersQuery(principal, kernel.RoleDeliveryPartner, "partner id", partnerID.String())
}

func newGetOrdersQuery(principal kernel.Principal, role kernel.Role, name, subjectID string) (GetOrdersQuery, error) {
	subjectID = strings.TrimSpace(subjectID)

	var subjectErr error
	if subjectID == "" {
		subjectErr = errs.NewValueIsRequiredError(name)
	}
	if err := errors.Join(requirePrincipal(principal), subjectErr); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		principal: principal,
		role:      role,
		subjectID: subjectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Principal() kernel.Principal { return q.principal }
func (q GetOrdersQuery) Role() kernel.Role           { return q.role }
func (q GetOrdersQuery) SubjectID() string           { return q.subjectID }
