package order

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
)

// DomainEvent is a notification recorded by the aggregate and drained by the
// workflow after persistence. Events are plain values: the aggregate holds a
// pending slice rather than inheriting accumulation from a shared base type,
// so publication stays an explicit workflow step.
type DomainEvent interface {
	EventName() string
}

// OrderCreatedDomainEvent is raised when a new order shell is constructed.
type OrderCreatedDomainEvent struct {
	OrderID   kernel.UUID
	CreatedAt time.Time
}

// EventName returns the stable name used when publishing the event.
func (e OrderCreatedDomainEvent) EventName() string {
	return "order.created"
}
