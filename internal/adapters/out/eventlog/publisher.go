// Package eventlog publishes domain events to the structured log.
// This is the simplest EventPublisher implementation; a message broker
// can replace it behind the same port.
package eventlog

import (
	"context"
	"log/slog"

	"orderservice/internal/core/domain/model/order"
)

// SlogEventPublisher writes each domain event as one structured log record.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher that logs events via the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{logger: logger.With("component", "event_publisher")}
}

// Publish logs every event. It never fails.
func (p *SlogEventPublisher) Publish(ctx context.Context, events []order.DomainEvent) error {
	for _, event := range events {
		attrs := []any{"event", event.EventName()}
		if created, ok := event.(order.OrderCreatedDomainEvent); ok {
			attrs = append(attrs,
				"order_id", created.OrderID.String(),
				"created_at", created.CreatedAt,
			)
		}
		p.logger.InfoContext(ctx, "domain event", attrs...)
	}
	return nil
}
