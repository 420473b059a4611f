package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order and its lines straight from
// the database, bypassing the aggregate.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query, _ := NewGetOrderByIDQuery(orderNumber)
//
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns errs.ErrObjectNotFound (wrapped) when no order carries the id.
// Lines come back in the order they were added to the order.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var resp GetOrderByIDQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			invoice_address,
			invoice_email,
			invoice_credit_card_number,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.InvoiceAddress,
		&resp.InvoiceEmail,
		&resp.InvoiceCreditCardNumber,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderNumber", query.OrderID())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Lines = make([]OrderLineResponse, 0)
	resp.Total = decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			unit_price,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var lineID uuid.UUID
		if err = rows.Scan(
			&lineID,
			&line.ProductID,
			&line.ProductName,
			&line.UnitPrice,
			&line.Quantity,
		); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}

		if line.ID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}

		resp.Total = resp.Total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return resp, nil
}
