// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root that owns its order lines
// and enforces every invariant at construction and mutation time.
//
// The package includes:
//   - Order: The aggregate root holding invoice details and the line collection
//   - OrderLine: A quantity of one product at a captured unit price, owned exclusively by an Order
//   - OrderCreatedDomainEvent: Raised when a new order shell is constructed
//
// Key business rules:
//   - Orders must have a non-empty invoice address and a valid invoice email
//   - Every line quantity is positive; a line with quantity <= 0 never exists
//   - At most one line exists per product; repeated additions merge into it
//   - A line is added only when the cumulative quantity stays within the
//     available stock snapshot of the product used to add it
//
// The package follows Domain-Driven Design principles: private fields, validated
// constructors, and a dedicated rehydration path for persistence.
package order
