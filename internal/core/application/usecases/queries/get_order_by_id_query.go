// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the domain model.
package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order with all its lines.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery("123e4567-e89b-12d3-a456-426614174000")
//	if err != nil {
//	    return fmt.Errorf("invalid order number: %w", err)
//	}
//
//	order, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for the given order number.
// The order number must be a valid UUID string.
func NewGetOrderByIDQuery(orderID string) (GetOrderByIDQuery, error) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderByIDQueryResponse is the read model for a single order.
type GetOrderByIDQueryResponse struct {
	ID                      kernel.UUID
	InvoiceAddress          string
	InvoiceEmail            string
	InvoiceCreditCardNumber string
	CreatedAt               time.Time
	Lines                   []OrderLineResponse
	Total                   decimal.Decimal
}

// OrderLineResponse is the read model for one order position.
type OrderLineResponse struct {
	ID          kernel.UUID
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}
