package order

import (
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderLine represents one product's quantity within an order. The product
// name and unit price are denormalized snapshots captured at creation time and
// never re-validated against the catalog. A line is immutable except for
// quantity growth, and only the owning Order may create or mutate it.
type OrderLine struct {
	id          kernel.UUID
	productID   string
	productName string
	unitPrice   decimal.Decimal
	quantity    int
}

// newOrderLine creates a line with a freshly generated identifier.
// Fails when quantity is not positive. The upper bound is not enforced here;
// the Order checks the stock snapshot before calling this.
func newOrderLine(productID, productName string, unitPrice decimal.Decimal, quantity int) (*OrderLine, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &OrderLine{
		id:          kernel.NewUUID(),
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// RestoreOrderLine reconstructs a line from persisted state.
// It bypasses creation-time identifier generation so that stored lines keep
// their original identity. The quantity must still be positive: a line with
// quantity <= 0 must never exist, stored or not.
func RestoreOrderLine(
	id kernel.UUID,
	productID, productName string,
	unitPrice decimal.Decimal,
	quantity int,
) (*OrderLine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &OrderLine{
		id:          id,
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// increaseQuantity grows the line by delta. Fails when delta is not positive.
func (l *OrderLine) increaseQuantity(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("added quantity %d is not greater than 0", delta))
	}

	l.quantity += delta
	return nil
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// ProductID returns the identifier of the product this line was created from.
func (l *OrderLine) ProductID() string {
	return l.productID
}

// ProductName returns the product name captured when the line was created.
func (l *OrderLine) ProductName() string {
	return l.productName
}

// UnitPrice returns the unit price captured when the line was created.
func (l *OrderLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the current quantity of the line.
func (l *OrderLine) Quantity() int {
	return l.quantity
}
