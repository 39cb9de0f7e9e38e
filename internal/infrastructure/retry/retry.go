// Package retry provides a generic retry mechanism with pluggable backoff and sleeping.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/infrastructure/timeutil"
)

// BackoffFunc returns how long to wait after the given failed attempt (1-based).
type BackoffFunc func(attempt int) time.Duration

// Linear waits attempt × step after each failed attempt.
func Linear(step time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the initial attempt).
	MaxAttempts int

	// Backoff computes the wait after a failed attempt.
	// If nil, attempts follow each other immediately.
	Backoff BackoffFunc

	// RetryIf is an optional predicate to determine if an error is retryable.
	// If nil, all errors are considered retryable.
	RetryIf func(error) bool

	// Sleeper performs the wait. If nil, a RealSleeper is used.
	Sleeper timeutil.Sleeper

	// OnRetry is called before each wait with the failed attempt number.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultConfig makes three attempts, waiting 2s and then 4s.
var DefaultConfig = Config{
	MaxAttempts: 3,
	Backoff:     Linear(2 * time.Second),
}

// ExhaustedError is returned when every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do executes the function with retry logic.
// A non-retryable error is returned unchanged; a context error is returned
// as soon as cancellation is observed.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult executes a function that returns a value with retry logic.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	sleeper := cfg.Sleeper
	if sleeper == nil {
		sleeper = timeutil.NewRealSleeper()
	}

	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return zero, err
		}

		// Don't sleep after last attempt
		if attempt == cfg.MaxAttempts {
			break
		}

		var delay time.Duration
		if cfg.Backoff != nil {
			delay = cfg.Backoff(attempt)
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, delay, err)
		}
		if err := sleeper.Sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, &ExhaustedError{Attempts: cfg.MaxAttempts, Err: lastErr}
}

// WithRetryIf returns a new config with the given RetryIf predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a new config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithBackoff returns a new config with the given backoff.
func (c Config) WithBackoff(b BackoffFunc) Config {
	c.Backoff = b
	return c
}

// WithSleeper returns a new config with the given sleeper.
func (c Config) WithSleeper(s timeutil.Sleeper) Config {
	c.Sleeper = s
	return c
}

// WithOnRetry returns a new config with the given retry hook.
func (c Config) WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Config {
	c.OnRetry = fn
	return c
}
