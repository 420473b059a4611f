package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/product"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvoiceAddressIsRequired is returned when the invoice address is empty or blank.
	ErrInvoiceAddressIsRequired = errs.NewValueIsRequiredError("invoice address")

	// ErrInvoiceEmailIsInvalid is returned when the invoice email is blank or lacks an '@'.
	ErrInvoiceEmailIsInvalid = errs.NewValueIsInvalidError("invoice email")

	// ErrProductIsRequired is returned when AddProduct is called without a valid product snapshot.
	ErrProductIsRequired = errs.NewValueIsRequiredError("product")

	// ErrInsufficientStock is the unwrap target for InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError indicates that a requested line addition would exceed
// the available stock snapshot of the product used to add it.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s for product %s: requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Order is the aggregate root for a customer order. It owns an
// insertion-ordered collection of OrderLines and is the sole authority for
// what constitutes a valid order: all mutation passes through its methods, and
// no external code can construct an Order in an invalid state or bypass the
// stock checks.
//
// Order maintains these invariants:
//   - The invoice address is non-empty and the invoice email contains an '@'
//   - Every line quantity is positive
//   - No two lines share the same product identifier
//   - A line addition never pushes the cumulative quantity past the available
//     stock snapshot of the product used to add it
//
// The stock check uses the snapshot observed at build time only. Two
// concurrent order builds reading the same snapshot can both succeed; guarding
// against that race is the responsibility of an inventory layer outside this
// aggregate.
type Order struct {
	id                      kernel.UUID
	invoiceAddress          string
	invoiceEmail            string
	invoiceCreditCardNumber string
	createdAt               time.Time
	lines                   []*OrderLine

	pendingEvents []DomainEvent
	isConstructed bool
}

// NewOrder creates a new Order with a generated identifier, a creation
// timestamp, and an empty line collection. Construction fails atomically when
// the invoice address is blank or the invoice email is blank or lacks an '@';
// no partially-valid Order is ever observable.
//
// The credit card number is stored as provided. Its format is validated by the
// request validation layer, not here.
//
// A pending OrderCreatedDomainEvent is recorded on the new aggregate; the
// workflow drains it via PopDomainEvents after persisting.
func NewOrder(invoiceAddress, invoiceEmail, invoiceCreditCardNumber string) (*Order, error) {
	order := &Order{
		id:            kernel.NewUUID(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setInvoiceAddress(invoiceAddress),
		order.setInvoiceEmail(invoiceEmail),
	); err != nil {
		return nil, err
	}

	order.invoiceCreditCardNumber = invoiceCreditCardNumber
	order.raise(OrderCreatedDomainEvent{OrderID: order.id, CreatedAt: order.createdAt})

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. It is the dedicated
// rehydration path for the persistence adapter: invoice fields are taken as
// stored so that historical data predating a rule change can still be loaded,
// and no creation event is raised.
func RestoreOrder(
	id kernel.UUID,
	invoiceAddress, invoiceEmail, invoiceCreditCardNumber string,
	createdAt time.Time,
	lines []*OrderLine,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if line == nil {
			return nil, errs.NewValueIsRequiredError("order line")
		}
		if _, ok := seen[line.productID]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("order lines",
				fmt.Errorf("duplicate line for product %s", line.productID))
		}
		seen[line.productID] = struct{}{}
	}

	return &Order{
		id:                      id,
		invoiceAddress:          invoiceAddress,
		invoiceEmail:            invoiceEmail,
		invoiceCreditCardNumber: invoiceCreditCardNumber,
		createdAt:               createdAt,
		lines:                   lines,
		isConstructed:           true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// InvoiceAddress returns the invoice address captured at construction.
func (o *Order) InvoiceAddress() string {
	return o.invoiceAddress
}

// InvoiceEmail returns the invoice email captured at construction.
func (o *Order) InvoiceEmail() string {
	return o.invoiceEmail
}

// InvoiceCreditCardNumber returns the credit card number as provided by the caller.
func (o *Order) InvoiceCreditCardNumber() string {
	return o.invoiceCreditCardNumber
}

// CreatedAt returns the timestamp fixed when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns the order lines in insertion order.
// The returned slice is a copy; the lines themselves are shared and must only
// be mutated through the aggregate.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddProduct adds a quantity of the given product to the order.
//
// When a line for the product already exists, the quantity is merged into it;
// otherwise a new line is appended, capturing the product's name and unit
// price. The addition fails with an InsufficientStockError when the cumulative
// quantity (existing + requested) would exceed the product's available stock
// snapshot, and with a quantity error when the requested quantity is not
// positive. On failure the line collection is left untouched.
func (o *Order) AddProduct(p *product.Product, quantity int) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if p == nil || p.Validate() != nil {
		return ErrProductIsRequired
	}

	existing := o.findLine(p.ID())

	requested := quantity
	if existing != nil {
		requested += existing.Quantity()
	}
	if requested > p.AvailableStock() {
		return &InsufficientStockError{
			ProductID: p.ID(),
			Requested: requested,
			Available: p.AvailableStock(),
		}
	}

	if existing != nil {
		return existing.increaseQuantity(quantity)
	}

	line, err := newOrderLine(p.ID(), p.Name(), p.UnitPrice(), quantity)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	return nil
}

// PopDomainEvents drains and returns the events recorded on the aggregate
// since the last drain. The workflow publishes them after the aggregate has
// been persisted.
func (o *Order) PopDomainEvents() []DomainEvent {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

func (o *Order) raise(event DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}

func (o *Order) findLine(productID string) *OrderLine {
	for _, line := range o.lines {
		if line.productID == productID {
			return line
		}
	}
	return nil
}

func (o *Order) setInvoiceAddress(invoiceAddress string) error {
	if strings.TrimSpace(invoiceAddress) == "" {
		return ErrInvoiceAddressIsRequired
	}
	o.invoiceAddress = invoiceAddress
	return nil
}

func (o *Order) setInvoiceEmail(invoiceEmail string) error {
	if strings.TrimSpace(invoiceEmail) == "" || !strings.Contains(invoiceEmail, "@") {
		return ErrInvoiceEmailIsInvalid
	}
	o.invoiceEmail = invoiceEmail
	return nil
}
