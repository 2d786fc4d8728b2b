package utils

import (
	"context"
	"time"
)

var newTimer = time.NewTimer

// WaitFor pauses for d or until ctx is done. It backs the retry delay between
// model calls.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := newTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
