package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// OrderNumberGenerator produces human-facing order numbers of the form
// ORD<unix millis><3 random digits>. Uniqueness is still checked against the
// store by the caller.
type OrderNumberGenerator struct {
	now func() time.Time
}

// NewOrderNumberGenerator reads the clock from now, or time.Now when nil.
func NewOrderNumberGenerator(now func() time.Time) OrderNumberGenerator {
	return OrderNumberGenerator{now: now}
}

func (g OrderNumberGenerator) Next() string {
	now := time.Now
	if g.now != nil {
		now = g.now
	}
	return fmt.Sprintf("ORD%d%03d", now().UnixMilli(), rand.IntN(1000)) //nolint:gosec // not a secret
}
