package messaging

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"catalog-backend/application/ports"
	"catalog-backend/domain/events"
	pkgerrors "catalog-backend/pkg/errors"
)

// CircuitBreakerConfig holds the breaker tuning for the emitter decorator.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultCircuitBreakerConfig returns a conservative default tuning.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// CircuitBreakerEmitter wraps an emitter with a gobreaker circuit breaker
// so a failing event channel sheds load instead of stalling every write.
type CircuitBreakerEmitter struct {
	inner   ports.DomainEventEmitter
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewCircuitBreakerEmitter decorates the given emitter.
func NewCircuitBreakerEmitter(inner ports.DomainEventEmitter, config CircuitBreakerConfig, logger *zap.Logger) *CircuitBreakerEmitter {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("emitter circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &CircuitBreakerEmitter{
		inner:   inner,
		breaker: breaker,
		logger:  logger,
	}
}

// Emit publishes through the breaker. An open breaker fails fast with a
// publish error.
func (e *CircuitBreakerEmitter) Emit(ctx context.Context, event events.DomainEvent) error {
	_, err := e.breaker.Execute(func() (any, error) {
		return nil, e.inner.Emit(ctx, event)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return pkgerrors.NewEventPublishFailed(err.Error())
	}
	return err
}
