package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/domain/model/partner"
	"foodies/internal/pkg/errs"
)

// ErrPartnerNotFound is returned when no eligible partner is available for
// an automatic assignment.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// Strategy names accepted by NewAssignmentStrategy.
const (
	StrategyManual  = "manual"
	StrategyNearest = "nearest"
	StrategyFIFO    = "fifo"
)

// AssignmentStrategy picks the delivery partner for an order from a list of
// candidates. Implementations never mutate the order or the partners.
type AssignmentStrategy interface {
	Name() string
	Pick(o *order.Order, candidates []*partner.Partner) (*partner.Partner, error)
}

// NewAssignmentStrategy returns the automatic strategy for name. The manual
// strategy needs a partner id and is built with NewManualStrategy instead.
func NewAssignmentStrategy(name string) (AssignmentStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyNearest:
		return NearestStrategy{}, nil
	case StrategyFIFO:
		return FIFOStrategy{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("assignment strategy",
			fmt.Errorf("%q is not an automatic strategy", name))
	}
}

// ManualStrategy accepts exactly the partner an operator chose, provided the
// partner is known and eligible.
type ManualStrategy struct {
	partnerID kernel.UUID
}

func NewManualStrategy(partnerID kernel.UUID) ManualStrategy {
	return ManualStrategy{partnerID: partnerID}
}

func (s ManualStrategy) Name() string {
	return StrategyManual
}

// Pick returns AuthorizationError when the chosen partner is not among the
// candidates or is not approved and available.
func (s ManualStrategy) Pick(o *order.Order, candidates []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	subject := "delivery partner " + s.partnerID.String()
	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.ID().IsEqual(s.partnerID) {
			continue
		}
		if !p.IsEligible() {
			return nil, errs.NewAuthorizationErrorWithCause(subject, "take orders",
				errors.New("partner is not approved or not available"))
		}
		return p, nil
	}

	return nil, errs.NewAuthorizationErrorWithCause(subject, "take orders", errors.New("unknown delivery partner"))
}

// NearestStrategy picks the eligible partner with the shortest estimated
// travel time to the delivery address. Ties keep the earlier candidate.
type NearestStrategy struct{}

func (NearestStrategy) Name() string {
	return StrategyNearest
}

func (NearestStrategy) Pick(o *order.Order, candidates []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		best     *partner.Partner
		bestTime = math.MaxFloat64
	)

	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsEligible() {
			continue
		}

		tm, err := p.MinutesToLocation(o.DeliveryAddress().Location())
		if err != nil {
			return nil, err
		}

		if tm < bestTime {
			bestTime = tm
			best = p
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}

	return best, nil
}

// FIFOStrategy picks the first eligible candidate. Candidates are expected
// in the order partners became free.
type FIFOStrategy struct{}

func (FIFOStrategy) Name() string {
	return StrategyFIFO
}

func (FIFOStrategy) Pick(o *order.Order, candidates []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.IsEligible() {
			return p, nil
		}
	}

	return nil, ErrPartnerNotFound
}
