package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factories.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentNotSettled is the cause reported when a transition needs a paid order.
	ErrPaymentNotSettled = errors.New("payment is not settled")
)

// NumberParam names the order number in validation errors. Stores report a
// taken number as errs.ValueIsInvalidError with this ParamName.
const NumberParam = "order number"

// Draft is the customer input for a new order.
type Draft struct {
	CustomerID          string
	RestaurantID        string
	Items               []Item
	Amounts             Amounts
	PaymentMethod       kernel.PaymentMethod
	DeliveryAddress     Address
	SpecialInstructions string
}

// Order is the aggregate root for a customer's food order. It owns the
// fulfilment state machine, the order-side payment status, the assigned
// delivery partner and the tracking landmarks.
//
// Order follows these invariants:
//   - Items are non-empty and the subtotal equals the sum of line totals
//   - Total equals subtotal + delivery fee + tax
//   - Status only moves along the transition table (see Status)
//   - DELIVERED requires a settled payment, except cash on delivery under
//     the SettleOnDelivery policy
//   - Tracking landmarks are write-once and monotonic
//
// Every successful mutation records a domain event; callers persist the
// order and hand the events to the publisher after commit.
type Order struct {
	id                  kernel.UUID
	number              string
	customerID          string
	restaurantID        string
	deliveryPartnerID   *kernel.UUID
	items               []Item
	amounts             Amounts
	status              Status
	paymentStatus       PaymentStatus
	paymentMethod       kernel.PaymentMethod
	deliveryAddress     Address
	specialInstructions string
	tracking            Tracking
	createdAt           time.Time
	updatedAt           time.Time

	// version is the persisted revision, used for optimistic concurrency.
	version int64

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder creates a PENDING order with payment status PENDING and the
// placed landmark set to now.
//
// Parameters:
//   - id: unique identifier
//   - number: human-facing unique order number
//   - draft: validated customer input
//   - now: creation time
//
// Returns:
//   - *Order: the created order, with one Changed event labelled PENDING
//   - error: joined validation errors
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD20261014101500123", draft, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, number string, draft Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:              Pending,
		paymentStatus:       PaymentPending,
		specialInstructions: strings.TrimSpace(draft.SpecialInstructions),
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setParties(draft.CustomerID, draft.RestaurantID),
		o.setLines(draft.Items, draft.Amounts),
		o.setPaymentMethod(draft.PaymentMethod),
		o.setDeliveryAddress(draft.DeliveryAddress),
	); err != nil {
		return nil, err
	}

	placed := now
	o.tracking.placed = &placed
	o.tracking.currentStatus = Pending.String()
	o.recordChanged(Pending.String(), now)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) CustomerID() string {
	return o.customerID
}

func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// DeliveryPartner returns the assigned partner, or nil.
func (o *Order) DeliveryPartner() *kernel.UUID {
	if o.deliveryPartnerID == nil {
		return nil
	}
	id := *o.deliveryPartnerID
	return &id
}

// IsAssignedTo reports whether partnerID is the assigned delivery partner.
func (o *Order) IsAssignedTo(partnerID string) bool {
	return o.deliveryPartnerID != nil && o.deliveryPartnerID.String() == partnerID
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Amounts() Amounts {
	return o.amounts
}

func (o *Order) Total() decimal.Decimal {
	return o.amounts.Total()
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentMethod() kernel.PaymentMethod {
	return o.paymentMethod
}

func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

func (o *Order) Tracking() Tracking {
	return o.tracking
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int64 {
	return o.version
}

// CommitVersion is called by a repository after a versioned write succeeded.
func (o *Order) CommitVersion() {
	o.version++
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return append([]kernel.DomainEvent(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// Transition moves the order to target.
//
// This method enforces the following business rules:
//   - target must be listed for the current status in the transition table
//   - REFUNDED requires payment status PAID and sets it to REFUNDED
//   - DELIVERED requires payment status PAID; a cash-on-delivery order under
//     SettleOnDelivery is marked PAID at delivery instead
//
// On failure the order is left untouched and an InvalidTransitionError is
// returned. On success the matching landmark is set, note (if any) is
// appended to the tracking notes and a Changed event labelled with the
// target status is recorded.
//
// Example:
//
//	if err := o.Transition(order.Confirmed, "accepted by kitchen", order.SettleOnDelivery, time.Now()); err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition)
//	}
func (o *Order) Transition(target Status, note string, policy CashOnDeliveryPolicy, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError("order", o.status.String(), target.String())
	}

	paymentStatus := o.paymentStatus
	switch target {
	case Refunded:
		if o.paymentStatus != PaymentPaid {
			return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), target.String(), ErrPaymentNotSettled)
		}
		paymentStatus = PaymentRefunded
	case Delivered:
		if o.paymentStatus != PaymentPaid {
			if o.paymentMethod != kernel.PaymentMethodCashOnDelivery || policy != SettleOnDelivery {
				return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), target.String(), ErrPaymentNotSettled)
			}
			paymentStatus = PaymentPaid
		}
	}

	o.status = target
	o.paymentStatus = paymentStatus
	o.tracking.record(target, strings.TrimSpace(note), now)
	o.touch(now)
	o.recordChanged(target.String(), now)
	return nil
}

// AssignPartner assigns (or reassigns) the delivery partner. Assignment is
// only possible before pickup. Assigning the partner that is already
// assigned changes nothing and returns false.
func (o *Order) AssignPartner(partnerID kernel.UUID, now time.Time) (bool, error) {
	if err := partnerID.Validate(); err != nil {
		return false, err
	}

	if !o.status.IsAssignable() {
		return false, errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), LabelAssigned,
			fmt.Errorf("partner cannot be assigned once the order is %s", o.status))
	}

	if o.deliveryPartnerID != nil && o.deliveryPartnerID.IsEqual(partnerID) {
		return false, nil
	}

	o.deliveryPartnerID = &partnerID
	o.touch(now)
	o.recordChanged(LabelAssigned, now)
	return true, nil
}

// UpdateLocation records the live delivery position. Status is not changed.
// Rejected once the order is DELIVERED, CANCELLED or REFUNDED.
func (o *Order) UpdateLocation(loc kernel.Location, now time.Time) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause("order", o.status.String(), o.status.String(),
			errors.New("location cannot change after the order has ended"))
	}

	o.tracking.currentLocation = &loc
	o.touch(now)
	o.events = append(o.events, LocationChanged{
		OrderID:    o.id,
		Latitude:   loc.Latitude(),
		Longitude:  loc.Longitude(),
		OccurredAt: now,
	})
	return nil
}

// MarkPaid records a confirmed payment. It returns false, recording
// nothing, when the order is already PAID.
func (o *Order) MarkPaid(now time.Time) (bool, error) {
	switch o.paymentStatus {
	case PaymentPaid:
		return false, nil
	case PaymentPending, PaymentFailed:
	default:
		return false, errs.NewInvalidTransitionError("order payment", o.paymentStatus.String(), PaymentPaid.String())
	}

	if o.status == Cancelled || o.status == Refunded {
		return false, errs.NewInvalidTransitionErrorWithCause("order payment", o.paymentStatus.String(), PaymentPaid.String(),
			fmt.Errorf("order is %s", o.status))
	}

	o.paymentStatus = PaymentPaid
	o.touch(now)
	o.recordChanged(LabelPaid, now)
	return true, nil
}

// MarkRefunded records a provider refund. A full refund moves the order to
// REFUNDED; a partial one only changes the payment status. Returns false
// when the refund was already recorded.
func (o *Order) MarkRefunded(full bool, policy CashOnDeliveryPolicy, now time.Time) (bool, error) {
	if full {
		if o.status == Refunded {
			return false, nil
		}
		if err := o.Transition(Refunded, "payment refunded", policy, now); err != nil {
			return false, err
		}
		return true, nil
	}

	switch o.paymentStatus {
	case PaymentPartiallyRefunded:
		return false, nil
	case PaymentPaid:
	default:
		return false, errs.NewInvalidTransitionError("order payment", o.paymentStatus.String(), PaymentPartiallyRefunded.String())
	}

	o.paymentStatus = PaymentPartiallyRefunded
	o.touch(now)
	o.recordChanged(LabelPartiallyRefunded, now)
	return true, nil
}

func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

func (o *Order) recordChanged(label string, now time.Time) {
	o.events = append(o.events, Changed{
		OrderID:    o.id,
		Label:      label,
		Order:      o.Snapshot(),
		OccurredAt: now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError(NumberParam)
	}
	o.number = number
	return nil
}

func (o *Order) setParties(customerID, restaurantID string) error {
	customerID = strings.TrimSpace(customerID)
	restaurantID = strings.TrimSpace(restaurantID)
	if err := errors.Join(required("customer id", customerID), required("restaurant id", restaurantID)); err != nil {
		return err
	}
	o.customerID = customerID
	o.restaurantID = restaurantID
	return nil
}

// setLines checks the items and that the subtotal matches them.
func (o *Order) setLines(items []Item, amounts Amounts) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if err := amounts.Validate(); err != nil {
		return err
	}

	sum := decimal.Zero
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
		sum = sum.Add(item.Total())
	}
	if !sum.Equal(amounts.Subtotal()) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal is invalid",
			fmt.Errorf("subtotal %s does not equal the sum of item totals %s", amounts.Subtotal(), sum))
	}

	o.items = append([]Item(nil), items...)
	o.amounts = amounts
	return nil
}

func (o *Order) setPaymentMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setDeliveryAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}
