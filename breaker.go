package indictrans

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig configures the circuit breaker.
type BreakerConfig struct {
	Name                string        // Breaker name used in state-change reporting
	ConsecutiveFailures uint32        // Failures in a row before the circuit opens
	OpenTimeout         time.Duration // How long the circuit stays open before probing
}

// DefaultBreakerConfig returns sensible defaults for the circuit breaker.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                "translation-backend",
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// BreakerBackend wraps a Backend with a circuit breaker. After a run of
// consecutive failures the circuit opens and calls fail fast with a
// backend-unavailable error instead of hammering a dead backend.
type BreakerBackend struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// NewBreakerBackend creates a new circuit-breaking backend.
func NewBreakerBackend(backend Backend, cfg BreakerConfig) *BreakerBackend {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:    cfg.Name,
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	return &BreakerBackend{
		backend: backend,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate implements Backend behind the circuit breaker.
func (b *BreakerBackend) Translate(ctx context.Context, req BackendRequest) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.Translate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", NewBackendError(KindBackendUnavailable, "translation backend circuit open", err)
		}
		return "", err
	}
	return result.(string), nil
}

// State returns the current circuit breaker state.
func (b *BreakerBackend) State() gobreaker.State {
	return b.cb.State()
}
