// Package services provides domain services that work across the order,
// payment and partner aggregates.
//
// The package includes:
//   - AssignmentStrategy: picks a delivery partner (manual, nearest, FIFO)
//   - AccessPolicy: decides which principal may act on an order
//   - OrderNumberGenerator: builds human-facing order numbers
package services
