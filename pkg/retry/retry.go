// Package retry provides a small bounded-retry helper with exponential
// backoff behind a shared rate limiter. It exists for flaky remote lookups
// (media resolution, avatar fetches) where a couple of spaced attempts are
// worth more than an immediate failure.
package retry

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Config bounds one retry loop.
type Config struct {
	Attempts     int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultConfig() Config {
	return Config{
		Attempts:     3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}
}

// Do runs fn up to cfg.Attempts times. Each attempt first waits on lim (nil
// means unlimited), and failed attempts back off exponentially. The last
// error is returned when every attempt fails; ctx cancellation aborts the
// loop immediately.
func Do(ctx context.Context, cfg Config, lim *rate.Limiter, fn func() error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if lim != nil {
			if werr := lim.Wait(ctx); werr != nil {
				return werr
			}
		}

		if err = fn(); err == nil {
			return nil
		}
		if attempt == cfg.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return fmt.Errorf("after %d attempts: %w", cfg.Attempts, err)
}
