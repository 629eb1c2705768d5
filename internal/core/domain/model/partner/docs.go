// Package partner provides the delivery partner aggregate used by order
// assignment: identity, vehicle, approval, availability and position.
package partner
