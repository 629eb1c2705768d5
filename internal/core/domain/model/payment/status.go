package payment

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// Status is the state of a payment attempt.
//
// State transitions:
//
//	PENDING ──┬──> PROCESSING ──┬──> COMPLETED ──┬──> REFUNDED
//	          │                 ├──> FAILED      └──> PARTIALLY_REFUNDED
//	          │                 └──> CANCELLED
//	          ├──> COMPLETED
//	          ├──> FAILED
//	          └──> CANCELLED
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	Completed
	Failed
	Cancelled
	Refunded
	PartiallyRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Pending:           "PENDING",
		Processing:        "PROCESSING",
		Completed:         "COMPLETED",
		Failed:            "FAILED",
		Cancelled:         "CANCELLED",
		Refunded:          "REFUNDED",
		PartiallyRefunded: "PARTIALLY_REFUNDED",
	}
}

var transitions = map[Status][]Status{
	Pending:           {Processing, Completed, Failed, Cancelled},
	Processing:        {Completed, Failed, Cancelled},
	Completed:         {Refunded, PartiallyRefunded},
	Failed:            {},
	Cancelled:         {},
	Refunded:          {},
	PartiallyRefunded: {},
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
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

// IsOpen is true while the payment can still be completed.
func (s Status) IsOpen() bool {
	return s == Pending || s == Processing
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%q is not a valid status", s))
}
