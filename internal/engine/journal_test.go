package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecordsEvents(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t)
	h := addHabit(t, svc, NewHabit{Name: "Pushups", Category: CategoryWorkout})

	hist, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)

	res, err := svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)

	hist, err = svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, hist, len(res.Events))
	kinds := make([]string, len(hist))
	for i, e := range hist {
		kinds[i] = e.Kind
	}
	assert.Contains(t, kinds, string(EventHabitCompleted))
	assert.Equal(t, string(res.Events[len(res.Events)-1].Kind), hist[0].Kind)

	clock.NextDay()
	_, err = svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)

	n, err := svc.CompletionsSince(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = svc.CompletionsSince(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.CompletionsSince(ctx, "yesterday")
	assert.Error(t, err)

	require.NoError(t, svc.ResetAllData(ctx))
	hist, err = svc.History(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestAlreadyCompletedRecordsNothing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	h := addHabit(t, svc, NewHabit{Name: "Read"})

	_, err := svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	before, err := svc.History(ctx, 100)
	require.NoError(t, err)

	res, err := svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)

	after, err := svc.History(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}
