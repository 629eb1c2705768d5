// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, locking, transaction
// management, and persistence. Domain events reach subscribers only after
// the unit of work commits.
package commands

import (
	"context"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/core/domain/model/order"
	"foodies/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// PartnerRepoFactory provides access to partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment operations, which read the
	// order they settle.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW manages transactions across both order and partner aggregates.
	// Used by the assignment commands.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   partnerRepo := uow.PartnerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Callbacks wired from the payment commands into the order commands.
type (
	// OrderPaymentRecorder marks an order paid after its payment verified.
	// Implementations must be idempotent.
	OrderPaymentRecorder interface {
		RecordOrderPaid(ctx context.Context, orderID kernel.UUID) error
	}

	// OrderRefundRecorder marks an order (partially) refunded after the
	// provider accepted a refund.
	OrderRefundRecorder interface {
		RecordOrderRefunded(ctx context.Context, orderID kernel.UUID, full bool) error
	}

	// PartnerAssigner performs a manual assignment. AutoAssignPartner
	// delegates to it once a strategy picked a partner.
	PartnerAssigner interface {
		Handle(ctx context.Context, cmd AssignDeliveryPartnerCommand) (order.Snapshot, error)
	}

	// DeliveryLocationUpdater records the live delivery position of an order.
	DeliveryLocationUpdater interface {
		Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) (order.Snapshot, error)
	}

	// NumberGenerator produces candidate order numbers.
	NumberGenerator interface {
		Next() string
	}
)
