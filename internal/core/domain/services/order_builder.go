package services

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/product"
)

// ErrProductResolutionMismatch is returned when a requested item's product is
// absent from the resolved product set. The workflow must resolve every
// requested product before building, so this indicates a missing pre-check in
// the caller rather than a legitimate business rejection. It is still raised
// instead of causing undefined behavior.
var ErrProductResolutionMismatch = errors.New("requested product missing from resolved set")

// Item is one requested order position: a product identifier and a quantity.
type Item struct {
	ProductID string
	Quantity  int
}

// OrderBuilder is a stateless domain service that reconciles a caller's
// requested line items against resolved Product snapshots and produces one
// fully-populated Order in a single call.
//
// Build is atomic from the caller's perspective: either a fully valid Order is
// returned or an error is, and the in-progress aggregate is discarded on
// failure. Requested items are applied in input order, which determines both
// the final line ordering and how duplicate product requests merge into a
// single line.
type OrderBuilder struct{}

// NewOrderBuilder creates a new OrderBuilder instance.
func NewOrderBuilder() OrderBuilder {
	return OrderBuilder{}
}

// Build constructs an Order from the invoice details, the requested items, and
// the product snapshots resolved for them.
//
// Construction failures of the order shell (invalid address or email) and line
// additions (nil product, insufficient stock, non-positive quantity) propagate
// unchanged. A requested item whose product is not in the resolved set fails
// with ErrProductResolutionMismatch.
func (b OrderBuilder) Build(
	invoiceAddress, invoiceEmail, invoiceCreditCardNumber string,
	items []Item,
	products []*product.Product,
) (*order.Order, error) {
	newOrder, err := order.NewOrder(invoiceAddress, invoiceEmail, invoiceCreditCardNumber)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*product.Product, len(products))
	for _, p := range products {
		if err = p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	for _, item := range items {
		resolved, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", ErrProductResolutionMismatch, item.ProductID)
		}

		if err = newOrder.AddProduct(resolved, item.Quantity); err != nil {
			return nil, err
		}
	}

	return newOrder, nil
}
