package indictrans

import (
	"context"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxAttempts int           // Total number of attempts, including the first
	BaseDelay   time.Duration // Delay before the first retry
	MaxDelay    time.Duration // Ceiling for the backoff delay
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    8 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes fn up to cfg.MaxAttempts times with exponential backoff.
// Only transient failures (backend timeout, backend unavailable) are retried;
// any other error returns immediately. After the final attempt the last error
// is returned unchanged so callers can still branch on its kind.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt < attempts {
			// Attempt n waits base * 2^(n-1), capped at MaxDelay.
			delay := cfg.BaseDelay * time.Duration(1<<(attempt-1))
			if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable checks if an error is a transient translation failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if terr, ok := AsTranslationError(err); ok {
		return terr.Retryable()
	}
	return false
}

// RetryableBackend wraps a Backend with retry logic.
type RetryableBackend struct {
	backend Backend
	config  RetryConfig
}

// NewRetryableBackend creates a new backend with retry logic.
func NewRetryableBackend(backend Backend, cfg RetryConfig) *RetryableBackend {
	return &RetryableBackend{
		backend: backend,
		config:  cfg,
	}
}

// Translate implements Backend with retry logic.
func (b *RetryableBackend) Translate(ctx context.Context, req BackendRequest) (string, error) {
	return WithRetry(ctx, b.config, func() (string, error) {
		return b.backend.Translate(ctx, req)
	})
}
