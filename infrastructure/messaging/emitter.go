// Package messaging implements the event emitter and dispatcher ports. The
// in-memory emitter is an outbox-lite: emitted events accumulate in a
// bounded queue that a consumer drains.
package messaging

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"catalog-backend/domain/events"
	pkgerrors "catalog-backend/pkg/errors"
)

// DefaultQueueCapacity bounds the in-memory emitter queue.
const DefaultQueueCapacity = 1024

// InMemoryEmitter queues emitted events in memory until drained.
type InMemoryEmitter struct {
	mu       sync.Mutex
	queue    []events.DomainEvent
	capacity int
	logger   *zap.Logger
}

// NewInMemoryEmitter creates an emitter with the given queue capacity.
// A non-positive capacity falls back to DefaultQueueCapacity.
func NewInMemoryEmitter(capacity int, logger *zap.Logger) *InMemoryEmitter {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &InMemoryEmitter{
		queue:    make([]events.DomainEvent, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Emit appends the event to the queue. It fails when the queue is full so
// callers see backpressure instead of silent loss.
func (e *InMemoryEmitter) Emit(ctx context.Context, event events.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return pkgerrors.NewEventPublishFailed(err.Error())
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) >= e.capacity {
		e.logger.Warn("event queue full, rejecting emit",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_id", event.AggregateID()),
			zap.Int("capacity", e.capacity))
		return pkgerrors.NewEventPublishFailed("event queue is full")
	}

	e.queue = append(e.queue, event)

	e.logger.Debug("event emitted",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID()),
		zap.String("aggregate_id", event.AggregateID()))

	return nil
}

// SetCapacity resizes the queue bound. Already-queued events stay queued
// even when the new bound is smaller; only further emits see it. A
// non-positive capacity is ignored.
func (e *InMemoryEmitter) SetCapacity(capacity int) {
	if capacity <= 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if capacity == e.capacity {
		return
	}
	e.logger.Info("event queue capacity changed",
		zap.Int("old_capacity", e.capacity),
		zap.Int("new_capacity", capacity))
	e.capacity = capacity
}

// Drain returns every queued event in emit order and empties the queue.
func (e *InMemoryEmitter) Drain() []events.DomainEvent {
	e.mu.Lock()
	defer e.mu.Unlock()

	drained := e.queue
	e.queue = make([]events.DomainEvent, 0, e.capacity)
	return drained
}

// Len reports the number of queued events.
func (e *InMemoryEmitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}
