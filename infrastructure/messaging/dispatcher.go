package messaging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"catalog-backend/application/ports"
	"catalog-backend/domain/events"
)

// Dispatcher drains an aggregate's pending events, publishes each through
// the emitter in raise order, then clears the pending list. It runs after
// the repository write succeeded.
type Dispatcher struct {
	emitter ports.DomainEventEmitter
	logger  *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(emitter ports.DomainEventEmitter, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		emitter: emitter,
		logger:  logger,
	}
}

// Dispatch implements ports.EventDispatcher. A publish failure aborts the
// drain and leaves the remaining events pending for a retry.
func (d *Dispatcher) Dispatch(ctx context.Context, source events.EventSource) error {
	pending, err := source.UncommittedEvents()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	start := time.Now()
	for _, event := range pending {
		if err := d.emitter.Emit(ctx, event); err != nil {
			d.logger.Error("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.String("aggregate_id", event.AggregateID()),
				zap.Error(err))
			return err
		}
	}

	if err := source.ClearEvents(); err != nil {
		return err
	}

	d.logger.Debug("pending events dispatched",
		zap.Int("count", len(pending)),
		zap.Duration("duration", time.Since(start)))

	return nil
}
