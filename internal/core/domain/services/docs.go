// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the order service. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderBuilder: A domain service reconciling requested line items against
//     resolved product snapshots into one fully-formed Order
//
// Domain services coordinate between aggregates and value objects, following
// Domain-Driven Design principles.
package services
