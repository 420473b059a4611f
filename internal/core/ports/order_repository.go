// Package ports defines repository and collaborator interfaces for the order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The workflow calls it after an aggregate is fully built; persisted orders are
// append-only history and are never mutated through this contract.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its lines, or an
	// errs.ObjectNotFoundError when no order exists for the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
