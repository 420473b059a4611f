package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler computes order statistics from the database.
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle executes the query and returns the current order statistics.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	var resp GetOrdersSummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			MAX(created_at)
		FROM orders
	`).Row()

	if err := row.Scan(&resp.TotalOrders, &resp.LastCreatedAt); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	return resp, nil
}
