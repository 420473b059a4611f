package commands

import (
	"errors"
	"strings"

	"orderservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrInvoiceAddressIsRequired    = errors.New("invoice address is required")
	ErrInvoiceEmailIsInvalid       = errors.New("invoice email must be a valid email address")
	ErrCreditCardNumberIsInvalid   = errors.New("credit card number is invalid")
	ErrOrderItemsAreRequired       = errors.New("at least one order item is required")
	ErrOrderItemProductIDIsMissing = errors.New("order item product id is required")
	ErrOrderItemQuantityIsInvalid  = errors.New("order item quantity must be greater than 0")
)

// OrderItemRequest is one requested order position as submitted by the caller.
type OrderItemRequest struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order.
// It performs request-shape validation (required fields, email format, credit
// card checksum, positive quantities) at construction time; domain rules such
// as stock limits remain with the Order aggregate.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("123 Main St", "a@b.com", "4111111111111111",
//	    []OrderItemRequest{{ProductID: "1", Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	invoiceAddress          string
	invoiceEmail            string
	invoiceCreditCardNumber string
	items                   []OrderItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the invoice address is present, the email looks like an email
// address, the credit card number passes a Luhn check, and every item carries
// a product identifier and a positive quantity.
func NewCreateOrderCommand(
	invoiceAddress, invoiceEmail, invoiceCreditCardNumber string,
	items []OrderItemRequest,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setInvoiceAddress(invoiceAddress),
		orderCommand.setInvoiceEmail(invoiceEmail),
		orderCommand.setInvoiceCreditCardNumber(invoiceCreditCardNumber),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// InvoiceAddress returns the invoice address for the new order.
func (c CreateOrderCommand) InvoiceAddress() string {
	return c.invoiceAddress
}

// InvoiceEmail returns the invoice email for the new order.
func (c CreateOrderCommand) InvoiceEmail() string {
	return c.invoiceEmail
}

// InvoiceCreditCardNumber returns the credit card number as submitted.
func (c CreateOrderCommand) InvoiceCreditCardNumber() string {
	return c.invoiceCreditCardNumber
}

// Items returns the requested order positions in submission order.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	items := make([]OrderItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setInvoiceAddress(invoiceAddress string) error {
	if strings.TrimSpace(invoiceAddress) == "" {
		return ErrInvoiceAddressIsRequired
	}

	c.invoiceAddress = invoiceAddress
	return nil
}

func (c *CreateOrderCommand) setInvoiceEmail(invoiceEmail string) error {
	if strings.TrimSpace(invoiceEmail) == "" || !strings.Contains(invoiceEmail, "@") {
		return ErrInvoiceEmailIsInvalid
	}

	c.invoiceEmail = invoiceEmail
	return nil
}

func (c *CreateOrderCommand) setInvoiceCreditCardNumber(invoiceCreditCardNumber string) error {
	if !isValidCreditCardNumber(invoiceCreditCardNumber) {
		return ErrCreditCardNumberIsInvalid
	}

	c.invoiceCreditCardNumber = invoiceCreditCardNumber
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			return ErrOrderItemProductIDIsMissing
		}
		if item.Quantity <= 0 {
			return ErrOrderItemQuantityIsInvalid
		}
	}

	c.items = make([]OrderItemRequest, len(items))
	copy(c.items, items)
	return nil
}

// isValidCreditCardNumber reports whether the number, after stripping spaces
// and dashes, is 12-19 digits and passes the Luhn checksum.
func isValidCreditCardNumber(number string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch < '0' || ch > '9' {
			return false
		}

		d := int(ch - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
