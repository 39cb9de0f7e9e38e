package timeutil

import (
	"context"
	"sync"
	"time"
)

// Sleeper pauses the caller between retry attempts.
// Sleep returns early with the context error when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on a timer.
type RealSleeper struct{}

// NewRealSleeper creates a new RealSleeper instance.
func NewRealSleeper() *RealSleeper {
	return &RealSleeper{}
}

// Sleep blocks for d or until ctx is done.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RecordingSleeper records requested durations without blocking.
// When Clock is set it is advanced by every recorded duration.
type RecordingSleeper struct {
	mu    sync.Mutex
	slept []time.Duration
	Clock *MockClock
}

// NewRecordingSleeper creates a sleeper for tests.
func NewRecordingSleeper() *RecordingSleeper {
	return &RecordingSleeper{}
}

// Sleep records d and returns immediately unless ctx is already done.
func (r *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.slept = append(r.slept, d)
	r.mu.Unlock()

	if r.Clock != nil {
		r.Clock.Advance(d)
	}
	return nil
}

// Durations returns a copy of the recorded durations in call order.
func (r *RecordingSleeper) Durations() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]time.Duration, len(r.slept))
	copy(out, r.slept)
	return out
}

// Total returns the sum of all recorded durations.
func (r *RecordingSleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Durations() {
		total += d
	}
	return total
}

var (
	_ Sleeper = (*RealSleeper)(nil)
	_ Sleeper = (*RecordingSleeper)(nil)
)
