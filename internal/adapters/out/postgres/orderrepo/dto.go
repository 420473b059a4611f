// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceAddress          string
	InvoiceEmail            string
	InvoiceCreditCardNumber string
	CreatedAt               time.Time      `gorm:"index"`
	Lines                   []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order position. Position preserves the order in
// which lines were added to the aggregate, so rehydration and read queries
// return lines in their original sequence.
type OrderLineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	ProductID   string          `gorm:"index"`
	ProductName string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(19,4)"`
	Quantity    int
	Position    int
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for i, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			UnitPrice:   line.UnitPrice(),
			Quantity:    line.Quantity(),
			Position:    i,
		})
	}

	return OrderDTO{
		ID:                      aggregate.ID().Bytes(),
		InvoiceAddress:          aggregate.InvoiceAddress(),
		InvoiceEmail:            aggregate.InvoiceEmail(),
		InvoiceCreditCardNumber: aggregate.InvoiceCreditCardNumber(),
		CreatedAt:               aggregate.CreatedAt(),
		Lines:                   lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder.
// Lines must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreOrderLine(
			lineID,
			lineDTO.ProductID,
			lineDTO.ProductName,
			lineDTO.UnitPrice,
			lineDTO.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.InvoiceAddress,
		dto.InvoiceEmail,
		dto.InvoiceCreditCardNumber,
		dto.CreatedAt,
		lines,
	)
}
