package ports

import (
	"context"

	"catalog-backend/domain/events"
)

// DomainEventEmitter publishes a single domain event to the outside world.
// Factories emit the Created event through this port the moment an
// aggregate is born; infrastructure decides what "publish" means.
type DomainEventEmitter interface {
	Emit(ctx context.Context, event events.DomainEvent) error
}

// EventDispatcher drains an aggregate's pending events, publishes them in
// raise order, and clears the pending list afterwards. Controllers call it
// after the repository write succeeded.
type EventDispatcher interface {
	Dispatch(ctx context.Context, source events.EventSource) error
}
