package ports

import (
	"context"
)

// Unlock releases a lock obtained from Locker. It is safe to call once.
type Unlock func()

// Locker provides mutual exclusion per key, e.g. "order:<id>".
// Lock blocks until the key is free or ctx is done.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// OrderLockKey is the lock key serialising all writes to one order.
func OrderLockKey(orderID string) string {
	return "order:" + orderID
}

// PaymentIntentLockKey serialises payment intent creation for one order.
func PaymentIntentLockKey(orderID string) string {
	return "payment-intent:" + orderID
}

// PaymentLockKey serialises verification and refunds of one provider order.
func PaymentLockKey(providerOrderID string) string {
	return "payment:" + providerOrderID
}

// PartnerLockKey serialises writes to one delivery partner.
func PartnerLockKey(partnerID string) string {
	return "partner:" + partnerID
}
