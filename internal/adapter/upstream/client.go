// Package upstream performs authenticated calls to third-party APIs under a
// shared per-call timeout and retry policy.
package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/retry"
)

// maxDetailBytes bounds how much of an error body is kept on an UpstreamError.
const maxDetailBytes = 512

// Config holds the client's static settings.
type Config struct {
	// CallTimeout bounds a single exchange; it is separate from the retry budget.
	CallTimeout time.Duration

	// Retry is the policy applied by Execute.
	Retry retry.Config
}

// DefaultConfig returns a 15s call timeout with three attempts and 2s/4s waits.
func DefaultConfig() Config {
	return Config{
		CallTimeout: 15 * time.Second,
		Retry:       retry.DefaultConfig,
	}
}

// Client sends requests through a Transport and maps outcomes to domain errors.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	transport Transport
	cfg       Config
	log       *logger.Logger
}

// NewClient creates a new upstream client.
func NewClient(transport Transport, cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		transport: transport,
		cfg:       cfg,
		log:       log,
	}
}

// Fetch performs one exchange and returns the body of a successful response.
// Overload and rate-limit statuses yield a transient UpstreamError; every
// other failure yields a non-transient one.
func (c *Client) Fetch(ctx context.Context, req Request) ([]byte, error) {
	callCtx, cancel := c.CallContext(ctx)
	defer cancel()

	start := time.Now()
	resp, err := c.transport.RoundTrip(callCtx, req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.log.Debug().
			Str("endpoint", req.Endpoint).
			Err(err).
			Msg("Upstream transport failure")
		return nil, domain.NewUpstreamError(req.Endpoint, 0, "", err)
	}

	c.log.Debug().
		Str("endpoint", req.Endpoint).
		Int("status", resp.StatusCode).
		Str("category", resp.Category.String()).
		Dur("duration", time.Since(start)).
		Msg("Upstream call completed")

	switch resp.Category {
	case StatusSuccess:
		return resp.Body, nil
	case StatusRateLimited:
		return nil, domain.NewTransientUpstreamError(req.Endpoint, resp.StatusCode, truncate(resp.Body))
	default:
		return nil, domain.NewUpstreamError(req.Endpoint, resp.StatusCode, truncate(resp.Body), nil)
	}
}

// CallContext derives the context for a single exchange, bounded by the call timeout.
func (c *Client) CallContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.CallTimeout)
}

// FetchWithRetry runs Fetch under the shared retry policy.
func (c *Client) FetchWithRetry(ctx context.Context, operation string, req Request) ([]byte, error) {
	return Execute(ctx, c, operation, func(ctx context.Context) ([]byte, error) {
		return c.Fetch(ctx, req)
	})
}

// Execute runs fn under the client's retry policy. Only transient errors are
// retried; exhaustion is reported as an ExhaustedRetriesError naming operation.
func Execute[T any](ctx context.Context, c *Client, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	opLog := c.log.WithOperation(operation)

	cfg := c.cfg.Retry.
		WithRetryIf(domain.IsTransient).
		WithOnRetry(func(attempt int, delay time.Duration, err error) {
			opLog.Warn().
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(err).
				Msg("Transient upstream failure, backing off")
		})

	result, err := retry.DoWithResult(ctx, func() (T, error) {
		return fn(ctx)
	}, cfg)

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		opLog.Error().
			Int("attempts", exhausted.Attempts).
			Err(exhausted.Err).
			Msg("Upstream retries exhausted")
		var zero T
		return zero, domain.NewExhaustedRetriesError(operation, exhausted.Attempts, exhausted.Err)
	}

	return result, err
}

func truncate(body []byte) string {
	if len(body) > maxDetailBytes {
		return string(body[:maxDetailBytes]) + "..."
	}
	return string(body)
}
