package queries

import (
	"errors"
	"time"

	"orderservice/internal/pkg/guard"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery retrieves aggregate statistics over all orders.
// Used by the periodic reporting job and exposed for monitoring.
type GetOrdersSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersSummaryQuery creates a parameterless summary query.
func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersSummaryQueryIsNotConstructed if validation fails.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// GetOrdersSummaryQueryResponse holds order statistics.
// LastCreatedAt is nil when no orders exist yet.
type GetOrdersSummaryQueryResponse struct {
	TotalOrders   int64
	LastCreatedAt *time.Time
}
