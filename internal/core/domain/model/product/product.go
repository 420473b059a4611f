// Package product provides the read-only catalog snapshot consumed by the
// order domain. A Product captures the state of a catalog entry (identifier,
// name, unit price, available stock) at the moment it was resolved; the order
// aggregate validates line additions against this snapshot and never holds a
// live reference back to the catalog.
package product

import (
	"errors"
	"fmt"

	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an immutable snapshot of a catalog entry.
//
// Product follows these invariants:
//   - Identifier and name must be non-empty
//   - Unit price must not be negative
//   - Available stock must not be negative
//
// The available stock value is advisory: it reflects the catalog state observed
// at resolution time and is not decremented when orders are created.
type Product struct {
	id             string
	name           string
	unitPrice      decimal.Decimal
	availableStock int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product snapshot with validation.
// Returns an error when the identifier or name is empty, the unit price is
// negative, or the available stock is negative.
func NewProduct(id, name string, unitPrice decimal.Decimal, availableStock int) (*Product, error) {
	if err := errors.Join(
		validateID(id),
		validateName(name),
		validateUnitPrice(unitPrice),
		validateAvailableStock(availableStock),
	); err != nil {
		return nil, err
	}

	return &Product{
		id:             id,
		name:           name,
		unitPrice:      unitPrice,
		availableStock: availableStock,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the opaque catalog identifier of the product.
func (p *Product) ID() string {
	return p.id
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the price per unit captured in this snapshot.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// AvailableStock returns the stock level observed when the snapshot was taken.
func (p *Product) AvailableStock() int {
	return p.availableStock
}

func validateID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	return nil
}

func validateAvailableStock(availableStock int) error {
	if availableStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("available stock",
			fmt.Errorf("%d is negative", availableStock))
	}
	return nil
}
