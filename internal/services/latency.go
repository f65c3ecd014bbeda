package services

import (
	"context"
	"time"
)

// Delay is the simulated backend round-trip every operation waits out before
// touching a store. Injectable so tests run with NoDelay while the app keeps
// the latency contract.
type Delay func(ctx context.Context) error

// Fixed waits d, or returns early if ctx is canceled first.
func Fixed(d time.Duration) Delay {
	return func(ctx context.Context) error {
		if d <= 0 {
			return ctx.Err()
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// NoDelay skips the pause entirely (still honoring an already-canceled ctx).
var NoDelay Delay = func(ctx context.Context) error { return ctx.Err() }
