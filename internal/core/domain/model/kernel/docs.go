// Package kernel provides the domain primitives shared by the order,
// payment and partner aggregates.
//
// The package includes:
//   - UUID: identifier value object
//   - Location: a geographic point with haversine distance
//   - Principal and Role: the explicit identity passed into every operation
//   - PaymentMethod: how an order is paid for
//
// Value objects are immutable and must be created through their constructors;
// zero values fail validation.
package kernel
