package ports

import (
	"context"

	"orderservice/internal/core/domain/model/order"
)

// EventPublisher delivers domain events drained from an aggregate after it has
// been persisted. Publication failures must not affect the already-committed
// business transaction; implementations decide whether to retry or drop.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.DomainEvent) error
}
