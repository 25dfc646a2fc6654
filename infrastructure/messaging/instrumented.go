package messaging

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"catalog-backend/application/ports"
	"catalog-backend/domain/events"
)

// InstrumentedEmitter counts successful publishes on its way through to the
// wrapped emitter. Failed emits are not counted; the counter tracks events
// that actually reached the queue.
type InstrumentedEmitter struct {
	inner   ports.DomainEventEmitter
	emitted prometheus.Counter
}

// NewInstrumentedEmitter wraps an emitter with an emitted-events counter.
func NewInstrumentedEmitter(inner ports.DomainEventEmitter, emitted prometheus.Counter) *InstrumentedEmitter {
	return &InstrumentedEmitter{inner: inner, emitted: emitted}
}

func (e *InstrumentedEmitter) Emit(ctx context.Context, event events.DomainEvent) error {
	if err := e.inner.Emit(ctx, event); err != nil {
		return err
	}
	e.emitted.Inc()
	return nil
}
