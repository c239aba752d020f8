// Package clock holds context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns early with ctx.Err().
func SleepWithContext(ctx context.Context, d time.Duration) error {
	_, err := WaitSignal(ctx, d, nil)
	return err
}

// WaitSignal waits until d elapses, signal fires or ctx is done. It reports
// whether the wake-up came from signal. A nil signal never fires.
func WaitSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-signal:
		return true, nil
	case <-timer.C:
		return false, nil
	}
}
