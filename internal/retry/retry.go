// Package retry runs an operation a bounded number of times with linear backoff.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 1 * time.Second
)

// Policy bounds how an operation is retried.
type Policy struct {
	// MaxAttempts includes the first call. Values below 1 are treated as 1.
	MaxAttempts int

	// BaseDelay is multiplied by the attempt number to get the wait after a failure.
	BaseDelay time.Duration

	// Retryable reports whether an error is worth another attempt.
	// A nil Retryable retries every error.
	Retryable func(error) bool
}

// Default is three attempts waiting 1s then 2s.
func Default() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

// Backoff is the wait after the given failed attempt (1-based).
func (p Policy) Backoff(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt)
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts run out. The last error is returned unchanged. Waiting between
// attempts stops as soon as ctx is done.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	logger := zerolog.Ctx(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry aborted before attempt %d: %w", attempt, err)
		}

		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}

		wait := p.Backoff(attempt)
		logger.Warn().Err(lastErr).Dur("backoff", wait).Msgf("Attempt %d failed", attempt)
		if err := sleep(ctx, wait); err != nil {
			return fmt.Errorf("retry aborted after attempt %d: %w", attempt, err)
		}
	}
	return lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
