package utils

import (
	"context"
	"time"
)

// Throttle spaces successive calls to Wait by at least a fixed interval.
// It is meant for a single sequential caller and holds no lock.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle creates a Throttle. A non-positive rateLimitMs disables pacing.
func NewThrottle(rateLimitMs int) *Throttle {
	return &Throttle{interval: time.Duration(rateLimitMs) * time.Millisecond}
}

// Wait blocks until the interval since the previous call has elapsed or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t.interval > 0 && !t.last.IsZero() {
		if remaining := t.interval - time.Since(t.last); remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	t.last = time.Now()
	return nil
}
