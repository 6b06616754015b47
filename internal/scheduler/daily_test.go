package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2024, 3, 4, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), NextMidnight(now, loc))

	// 15:30 UTC is already the 5th in UTC+9.
	utc := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, loc), NextMidnight(utc, loc))

	endOfMonth := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), NextMidnight(endOfMonth, time.UTC))
}

func TestDailyRunsAtStartAndAtEachMidnight(t *testing.T) {
	now := time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC)
	fire := make(chan time.Time)
	waits := make(chan time.Duration, 4)

	var runs atomic.Int32
	d := NewDaily("sweep", time.UTC, func(context.Context) error {
		runs.Add(1)
		return nil
	}, WithClock(
		func() time.Time { return now },
		func(w time.Duration) <-chan time.Time {
			waits <- w
			return fire
		},
	))

	d.Start(context.Background())
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, 2*time.Hour, <-waits)

	fire <- now
	<-waits
	assert.Equal(t, int32(2), runs.Load())

	d.Stop()
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestDailyStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := NewDaily("noop", time.UTC, func(context.Context) error { return nil })
	d.Start(ctx)
	cancel()
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	require.NotPanics(t, d.Stop)
}
