package services

import (
	"fmt"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/pkg/errs"
)

// AccessPolicy decides which principal may perform which operation on an
// order. Every method returns nil or an AuthorizationError.
//
// Rules:
//   - ADMIN and SYSTEM may do everything except force REFUNDED, which is
//     reserved to SYSTEM (the refund flow)
//   - the owning RESTAURANT confirms, prepares, readies, cancels and assigns
//   - the assigned DELIVERY_PARTNER picks up, delivers and reports position
//   - the owning CUSTOMER creates, views and may cancel while PENDING
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

func (AccessPolicy) CanCreateOrder(p kernel.Principal, customerID string) error {
	if p.IsPrivileged() || p.Is(kernel.RoleCustomer, customerID) {
		return nil
	}
	return deny(p, "create orders for customer "+customerID)
}

func (AccessPolicy) CanTransition(p kernel.Principal, o *order.Order, target order.Status) error {
	if target == order.Refunded {
		if p.Role() == kernel.RoleSystem {
			return nil
		}
		return deny(p, "mark orders refunded")
	}
	if p.IsPrivileged() {
		return nil
	}

	switch p.Role() {
	case kernel.RoleRestaurant:
		if p.ID() == o.RestaurantID() {
			switch target {
			case order.Confirmed, order.Preparing, order.ReadyForPickup, order.Cancelled:
				return nil
			}
		}
	case kernel.RoleDeliveryPartner:
		if o.IsAssignedTo(p.ID()) {
			switch target {
			case order.PickedUp, order.OutForDelivery, order.Delivered:
				return nil
			}
		}
	case kernel.RoleCustomer:
		if p.ID() == o.CustomerID() && target == order.Cancelled && o.Status() == order.Pending {
			return nil
		}
	}

	return deny(p, fmt.Sprintf("move order %s to %s", o.ID(), target))
}

func (AccessPolicy) CanAssign(p kernel.Principal, o *order.Order) error {
	if p.IsPrivileged() || p.Is(kernel.RoleRestaurant, o.RestaurantID()) {
		return nil
	}
	return deny(p, "assign a delivery partner to order "+o.ID().String())
}

func (AccessPolicy) CanUpdateLocation(p kernel.Principal, o *order.Order) error {
	if p.IsPrivileged() || (p.Role() == kernel.RoleDeliveryPartner && o.IsAssignedTo(p.ID())) {
		return nil
	}
	return deny(p, "report the position of order "+o.ID().String())
}

func (AccessPolicy) CanView(p kernel.Principal, o *order.Order) error {
	switch {
	case p.IsPrivileged(),
		p.Is(kernel.RoleCustomer, o.CustomerID()),
		p.Is(kernel.RoleRestaurant, o.RestaurantID()),
		p.Role() == kernel.RoleDeliveryPartner && o.IsAssignedTo(p.ID()):
		return nil
	}
	return deny(p, "view order "+o.ID().String())
}

// CanList allows a principal to list the orders of subjectID in role, i.e.
// only their own, unless privileged.
func (AccessPolicy) CanList(p kernel.Principal, role kernel.Role, subjectID string) error {
	if p.IsPrivileged() || p.Is(role, subjectID) {
		return nil
	}
	return deny(p, fmt.Sprintf("list orders of %s %s", role, subjectID))
}

// CanListUnassigned allows restaurants and privileged principals to see the
// assignment queue.
func (AccessPolicy) CanListUnassigned(p kernel.Principal) error {
	if p.IsPrivileged() || p.Role() == kernel.RoleRestaurant {
		return nil
	}
	return deny(p, "list unassigned orders")
}

// CanManagePartners allows onboarding delivery partners.
func (AccessPolicy) CanManagePartners(p kernel.Principal) error {
	if p.IsPrivileged() {
		return nil
	}
	return deny(p, "manage delivery partners")
}

// CanUpdatePartner allows a partner to update themself.
func (AccessPolicy) CanUpdatePartner(p kernel.Principal, partnerID string) error {
	if p.IsPrivileged() || p.Is(kernel.RoleDeliveryPartner, partnerID) {
		return nil
	}
	return deny(p, "update delivery partner "+partnerID)
}

// CanPay allows the customer of an order to open a payment for it.
func (AccessPolicy) CanPay(p kernel.Principal, customerID string) error {
	if p.IsPrivileged() || p.Is(kernel.RoleCustomer, customerID) {
		return nil
	}
	return deny(p, "pay for customer "+customerID)
}

// CanViewPayment allows the paying customer and privileged principals.
func (AccessPolicy) CanViewPayment(p kernel.Principal, customerID string) error {
	return AccessPolicy{}.CanPay(p, customerID)
}

func (AccessPolicy) CanRefund(p kernel.Principal) error {
	if p.IsPrivileged() {
		return nil
	}
	return deny(p, "refund payments")
}

func deny(p kernel.Principal, action string) error {
	return errs.NewAuthorizationError(p.String(), action)
}
