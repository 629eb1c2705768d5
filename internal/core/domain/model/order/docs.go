// Package order implements the Order aggregate: the fulfilment state machine,
// the order-side payment status, delivery partner assignment and tracking.
//
// The package includes:
//   - Order: the aggregate root
//   - Status: fulfilment states and the transition table
//   - PaymentStatus: settlement state as seen by the order
//   - Item, Amounts, Address, Tracking: value objects owned by the order
//   - Changed, LocationChanged: domain events recorded on mutation
//   - Snapshot: the flat form used by queries, notifications and persistence
//
// Key business rules:
//   - total == subtotal + delivery fee + tax, and subtotal == Σ line totals
//   - PENDING → CONFIRMED → PREPARING → READY_FOR_PICKUP → PICKED_UP →
//     OUT_FOR_DELIVERY → DELIVERED, with no skips and no way back
//   - CANCELLED from any status before DELIVERED; REFUNDED once paid
//   - DELIVERED needs a PAID order unless cash on delivery settles at the door
//   - landmarks are set once and never move backwards
package order
