package retry

import (
	"context"
	"fmt"
	"time"
)

type Config struct {
	MaxAttempts int
	Delay       time.Duration
	// Backoff doubles the delay after each failed attempt.
	Backoff bool
}

// Do runs fn up to MaxAttempts times, sleeping between attempts with
// optional exponential backoff. Context cancellation aborts the wait.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error

	delay := cfg.Delay
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == cfg.MaxAttempts {
				return fmt.Errorf("failed after %d attempts: %w", cfg.MaxAttempts, err)
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			if cfg.Backoff {
				delay *= 2
			}
			continue
		}
		return nil
	}

	return lastErr
}
