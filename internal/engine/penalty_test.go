package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRunsOncePerDay(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	missed := addHabit(t, svc, NewHabit{Name: "Skincare", Category: CategorySkincare})
	done := addHabit(t, svc, NewHabit{Name: "Sleep", Category: CategorySleep, XPReward: 5})
	addHabit(t, svc, NewHabit{Name: "Tuesdays", Frequency: Frequency{Type: FrequencyCustom}, ActiveDays: []int{2}})

	svc.habits[svc.habitIndex(missed.ID)].Streak = 3
	_, err := svc.CompleteHabit(ctx, done.ID, nil)
	require.NoError(t, err)

	res, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, res.ActiveHabits)
	assert.Equal(t, []string{missed.ID}, res.MissedHabits)
	assert.Equal(t, 1, res.XPDeducted)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.XP)
	assert.Equal(t, 50, stats.CompletionRate)
	h, err := svc.Habit(missed.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Streak)

	notes, err := svc.Notifications()
	require.NoError(t, err)
	assert.Equal(t, "Daily Habits Missed", notes[0].Title)
	assert.Equal(t, NotifyPenalty, notes[0].Type)

	again, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	stats, err = svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.XP)
	after, err := svc.Notifications()
	require.NoError(t, err)
	assert.Len(t, after, len(notes))

	clock.NextDay()
	next, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.False(t, next.Skipped)
	assert.Equal(t, "2024-03-05", next.Date)
	assert.Len(t, next.MissedHabits, 3)
}

func TestSweepNeverDropsBelowZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	addHabit(t, svc, NewHabit{Name: "a"})
	addHabit(t, svc, NewHabit{Name: "b"})
	svc.profile.Stats.Level = 3
	svc.profile.Stats.XP = 1

	res, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.XPDeducted)
	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 3, stats.Level)
}

func TestSweepReportsExpiredQuests(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	past := clock.Now().Add(-time.Hour)
	future := clock.Now().Add(time.Hour)
	expired, err := svc.AddQuest(ctx, NewQuest{Title: "Old", ExpiresAt: &past})
	require.NoError(t, err)
	_, err = svc.AddQuest(ctx, NewQuest{Title: "Fresh", ExpiresAt: &future})
	require.NoError(t, err)

	res, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{expired.ID}, res.ExpiredQuests)
	assert.Zero(t, res.XPDeducted)

	notes, err := svc.Notifications()
	require.NoError(t, err)
	assert.Equal(t, "Quests Failed", notes[0].Title)
}

func TestSweepFailsMissionPastDeadline(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20
	svc.profile.Stats.XP = 3

	started, err := svc.StartDungeonMission(ctx, planTusk(t, svc, 1, 1))
	require.NoError(t, err)

	res, err := svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	assert.Nil(t, res.FailedMission)

	clock.Advance(MissionDuration + time.Hour)
	res, err = svc.CheckIncompleteItems(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.FailedMission)
	assert.Equal(t, started.Mission.ID, res.FailedMission.Mission.ID)
	assert.Equal(t, 3, res.FailedMission.Penalty)

	p, err := svc.Profile()
	require.NoError(t, err)
	assert.Nil(t, p.ActiveMission)
	assert.Equal(t, MissionFailed, p.CompletedMissions[0].Status)
	assert.Equal(t, 0, p.Stats.XP)
}
