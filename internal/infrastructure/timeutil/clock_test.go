package timeutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestMockClock(t *testing.T) {
	initial := time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)
	clock := NewMockClock(initial)
	assert.Equal(t, initial, clock.Now())

	clock.Advance(30 * time.Minute)
	assert.Equal(t, time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC), clock.Now())

	later := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestRealSleeper_Sleep(t *testing.T) {
	s := NewRealSleeper()

	start := time.Now()
	require.NoError(t, s.Sleep(context.Background(), 5*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestRealSleeper_SleepCancelled(t *testing.T) {
	s := NewRealSleeper()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := s.Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRealSleeper_ZeroDuration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, NewRealSleeper().Sleep(context.Background(), 0))
	assert.ErrorIs(t, NewRealSleeper().Sleep(ctx, 0), context.Canceled)
}

func TestRecordingSleeper(t *testing.T) {
	clock := NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewRecordingSleeper()
	s.Clock = clock

	require.NoError(t, s.Sleep(context.Background(), 2*time.Second))
	require.NoError(t, s.Sleep(context.Background(), 4*time.Second))

	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, s.Durations())
	assert.Equal(t, 6*time.Second, s.Total())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 6, 0, time.UTC), clock.Now())
}

func TestRecordingSleeper_CancelledContext(t *testing.T) {
	s := NewRecordingSleeper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Sleep(ctx, time.Second), context.Canceled)
	assert.Empty(t, s.Durations())
}
