package order

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY_FOR_PICKUP ──> PICKED_UP ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   └───────────┴─────────────┴───────────────┴─────────────────┴──────────────┴──> CANCELLED
//
//	any status except REFUNDED ──> REFUNDED (only once payment is settled)
//
// There are no backward moves and no skipped steps. DELIVERED and CANCELLED
// end the fulfilment chain; REFUNDED is final.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	ReadyForPickup
	PickedUp
	OutForDelivery
	Delivered
	Cancelled
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		ReadyForPickup: "READY_FOR_PICKUP",
		PickedUp:       "PICKED_UP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Refunded:       "REFUNDED",
	}
}

// transitions is the complete table of allowed moves. Anything not listed
// here is rejected.
var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled, Refunded},
	Confirmed:      {Preparing, Cancelled, Refunded},
	Preparing:      {ReadyForPickup, Cancelled, Refunded},
	ReadyForPickup: {PickedUp, Cancelled, Refunded},
	PickedUp:       {OutForDelivery, Cancelled, Refunded},
	OutForDelivery: {Delivered, Cancelled, Refunded},
	Delivered:      {Refunded},
	Cancelled:      {Refunded},
	Refunded:       {},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup, PickedUp, OutForDelivery, Delivered, Cancelled, Refunded}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps a status name (case-insensitive) to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// CanTransitionTo reports whether target is listed for s in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsAssignable is true while a delivery partner may still be (re)assigned,
// i.e. before the order has been picked up.
func (s Status) IsAssignable() bool {
	switch s {
	case Pending, Confirmed, Preparing, ReadyForPickup:
		return true
	default:
		return false
	}
}

// IsTerminal is true once the fulfilment chain has ended.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// AssignableStatuses returns the statuses for which IsAssignable is true.
func AssignableStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup}
}

// ActiveStatuses returns the statuses in which an order occupies its
// delivery partner.
func ActiveStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup, PickedUp, OutForDelivery}
}
