package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterlog/internal/catalog"
)

func planTusk(t *testing.T, svc *Service, days ...int) DungeonMission {
	t.Helper()
	var steps []StepPlan
	for i, d := range days {
		steps = append(steps, StepPlan{Description: []string{"Scout", "Fight", "Finish"}[i%3], RequiredDays: d})
	}
	m, err := svc.PlanMission(MissionPlan{MonsterID: "tusk", Steps: steps})
	require.NoError(t, err)
	return m
}

func countInProgress(m DungeonMission) int {
	n := 0
	for _, st := range m.Steps {
		if st.Status == StepInProgress {
			n++
		}
	}
	return n
}

func TestPlanMissionUsesMonster(t *testing.T) {
	svc, clock := newTestService(t)
	m, err := svc.PlanMission(MissionPlan{MonsterID: "igris", Steps: []StepPlan{{Description: "a"}, {Description: "b", RequiredDays: 5}}})
	require.NoError(t, err)
	assert.Equal(t, MissionNotStarted, m.Status)
	assert.Equal(t, 1500, m.XPReward)
	assert.Equal(t, 15, m.RequiredLevel)
	assert.Equal(t, DefaultMissionPenalty, m.Penalty)
	assert.Equal(t, clock.Now().Add(MissionDuration), *m.DeadlineAt)
	assert.GreaterOrEqual(t, m.Steps[0].RequiredDays, 1)
	assert.LessOrEqual(t, m.Steps[0].RequiredDays, 3)
	assert.Equal(t, 5, m.Steps[1].RequiredDays)

	_, err = svc.PlanMission(MissionPlan{MonsterID: "nobody", Steps: []StepPlan{{}}})
	assert.ErrorIs(t, err, ErrMonsterNotFound)
	_, err = svc.PlanMission(MissionPlan{MonsterID: "igris"})
	assert.ErrorIs(t, err, ErrMissionNoSteps)
}

func TestStartMissionRejectedBelowRequiredLevel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 10

	m, err := svc.PlanMission(MissionPlan{MonsterID: "igris", Steps: []StepPlan{{RequiredDays: 1}}})
	require.NoError(t, err)
	before, err := svc.Notifications()
	require.NoError(t, err)

	_, err = svc.StartDungeonMission(ctx, m)
	var gate LevelGateError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, 15, gate.RequiredLevel)
	assert.Equal(t, 10, gate.CurrentLevel)

	active, err := svc.ActiveMission()
	require.NoError(t, err)
	assert.Nil(t, active)
	after, err := svc.Notifications()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestStartMissionRejectsSecondMission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20

	_, err := svc.StartDungeonMission(ctx, planTusk(t, svc, 1))
	require.NoError(t, err)
	_, err = svc.StartDungeonMission(ctx, planTusk(t, svc, 1))
	assert.ErrorIs(t, err, ErrMissionActive)

	_, err = svc.CompleteMissionStep(ctx, "other", "x")
	assert.ErrorIs(t, err, ErrMissionMismatch)
}

func TestMissionStepSequencing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20

	started, err := svc.StartDungeonMission(ctx, planTusk(t, svc, 2, 1, 1))
	require.NoError(t, err)
	m := started.Mission
	assert.Equal(t, MissionInProgress, m.Status)
	assert.Equal(t, StepInProgress, m.Steps[0].Status)
	assert.NotNil(t, m.Steps[0].StartedAt)
	assert.Equal(t, 1, countInProgress(m))

	_, err = svc.CompleteMissionStep(ctx, m.ID, m.Steps[1].ID)
	assert.ErrorIs(t, err, ErrStepNotInProgress)

	res, err := svc.CompleteMissionStep(ctx, m.ID, m.Steps[0].ID)
	require.NoError(t, err)
	assert.False(t, res.Step.StepCompleted)
	assert.Equal(t, 1, res.Step.Progress)

	res, err = svc.CompleteMissionStep(ctx, m.ID, m.Steps[0].ID)
	require.NoError(t, err)
	assert.True(t, res.Step.StepCompleted)
	assert.Equal(t, m.Steps[1].ID, res.Step.NextStepID)
	assert.Equal(t, 1, countInProgress(res.Mission))
	assert.Equal(t, StepInProgress, res.Mission.Steps[1].Status)

	res, err = svc.CompleteMissionStep(ctx, m.ID, m.Steps[1].ID)
	require.NoError(t, err)
	assert.Equal(t, m.Steps[2].ID, res.Step.NextStepID)
	assert.Equal(t, 1, countInProgress(res.Mission))

	res, err = svc.CompleteMissionStep(ctx, m.ID, m.Steps[2].ID)
	require.NoError(t, err)
	assert.True(t, res.Step.MissionCompleted)
	assert.True(t, res.Completed)
	assert.Equal(t, MissionCompleted, res.Mission.Status)
	assert.Equal(t, 0, countInProgress(res.Mission))
	require.NotNil(t, res.XP)
	assert.Equal(t, 800, res.XP.Amount)
	require.NotNil(t, res.Title)
	assert.Equal(t, "Blade Master", res.Title.Name)
	assert.Equal(t, catalog.RankB, res.Title.Rank)

	var itemIDs []string
	for _, it := range res.Items {
		itemIDs = append(itemIDs, it.ID)
	}
	assert.ElementsMatch(t, []string{"tusk-blade", "demon-essence"}, itemIDs)

	kinds := eventKinds(res.Events)
	n := 0
	for _, k := range kinds {
		if k == EventMissionCompleted {
			n++
		}
	}
	assert.Equal(t, 1, n)

	active, err := svc.ActiveMission()
	require.NoError(t, err)
	assert.Nil(t, active)
	history, err := svc.MissionHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, MissionCompleted, history[0].Status)

	_, err = svc.CompleteMissionStep(ctx, m.ID, m.Steps[2].ID)
	assert.ErrorIs(t, err, ErrNoActiveMission)
}

func TestMissionRewardsAndTitleAreIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20

	for i := 0; i < 2; i++ {
		started, err := svc.StartDungeonMission(ctx, planTusk(t, svc, 1))
		require.NoError(t, err)
		res, err := svc.CompleteDungeonMission(ctx, started.Mission.ID)
		require.NoError(t, err)
		if i == 1 {
			assert.Empty(t, res.Items)
			assert.Nil(t, res.Title)
		}
	}

	p, err := svc.Profile()
	require.NoError(t, err)
	assert.Len(t, p.Titles, 1)
	assert.Len(t, p.CompletedMissions, 2)
	seen := map[string]bool{}
	for _, it := range p.Inventory {
		require.False(t, seen[it.ID], "duplicate item %s", it.ID)
		seen[it.ID] = true
	}
}

func TestHabitCompletionAdvancesMissionStep(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20
	h := addHabit(t, svc, NewHabit{Name: "Sprint", Category: CategoryWorkout})
	unrelated := addHabit(t, svc, NewHabit{Name: "Floss"})

	m, err := svc.PlanMission(MissionPlan{MonsterID: "tusk", Steps: []StepPlan{{Description: "Sprint twice", HabitIDs: []string{h.ID}, RequiredDays: 2}}})
	require.NoError(t, err)
	started, err := svc.StartDungeonMission(ctx, m)
	require.NoError(t, err)

	res, err := svc.CompleteHabit(ctx, unrelated.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Mission)

	res, err = svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Mission)
	assert.Equal(t, 1, res.Mission.Step.Progress)
	assert.Contains(t, eventKinds(res.Events), EventStepProgress)

	res, err = svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	active, err := svc.ActiveMission()
	require.NoError(t, err)
	assert.Equal(t, 1, active.Steps[0].CurrentProgress)

	clock.NextDay()
	res, err = svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Mission)
	assert.True(t, res.Mission.Completed)
	assert.Equal(t, started.Mission.ID, res.Mission.Mission.ID)
	assert.Contains(t, eventKinds(res.Events), EventMissionCompleted)
}

func TestQuestCompletionAdvancesMissionStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20
	h := addHabit(t, svc, NewHabit{Name: "Read"})
	q, err := svc.AddQuest(ctx, NewQuest{Title: "Read once", HabitIDs: []string{h.ID}})
	require.NoError(t, err)

	m, err := svc.PlanMission(MissionPlan{MonsterID: "tusk", Steps: []StepPlan{{QuestIDs: []string{q.ID}, RequiredDays: 1}, {RequiredDays: 1}}})
	require.NoError(t, err)
	_, err = svc.StartDungeonMission(ctx, m)
	require.NoError(t, err)

	_, err = svc.CompleteHabit(ctx, h.ID, nil)
	require.NoError(t, err)
	res, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Mission)
	assert.True(t, res.Mission.Step.StepCompleted)
	assert.Equal(t, m.Steps[1].ID, res.Mission.Step.NextStepID)
}

func TestFailDungeonMission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.profile.Stats.Level = 20
	started, err := svc.StartDungeonMission(ctx, planTusk(t, svc, 1))
	require.NoError(t, err)

	res, err := svc.FailDungeonMission(ctx, started.Mission.ID)
	require.NoError(t, err)
	assert.True(t, res.Failed)
	assert.Equal(t, MissionFailed, res.Mission.Status)
	assert.NotNil(t, res.Mission.FailedAt)

	p, err := svc.Profile()
	require.NoError(t, err)
	assert.Nil(t, p.ActiveMission)
	require.Len(t, p.CompletedMissions, 1)
	assert.Empty(t, p.Titles)
	assert.Equal(t, 0, p.Stats.XP)

	_, err = svc.FailDungeonMission(ctx, started.Mission.ID)
	assert.ErrorIs(t, err, ErrNoActiveMission)
}

func TestAdvanceStepIsPure(t *testing.T) {
	m := DungeonMission{
		ID:     "m",
		Status: MissionInProgress,
		Steps: []DungeonStep{
			{ID: "a", Status: StepInProgress, RequiredDays: 1},
			{ID: "b", Status: StepNotStarted, RequiredDays: 1},
		},
	}
	now := newClock().Now()

	next, out, err := advanceStep(m, "a", now)
	require.NoError(t, err)
	assert.Equal(t, "b", out.NextStepID)
	assert.Equal(t, StepInProgress, m.Steps[0].Status)
	assert.Equal(t, 0, m.Steps[0].CurrentProgress)
	assert.Equal(t, StepCompleted, next.Steps[0].Status)

	_, _, err = advanceStep(m, "b", now)
	assert.ErrorIs(t, err, ErrStepNotInProgress)
	_, _, err = advanceStep(m, "zzz", now)
	assert.ErrorIs(t, err, ErrStepNotFound)

	m.Status = MissionCompleted
	_, _, err = advanceStep(m, "a", now)
	assert.ErrorIs(t, err, ErrNoActiveMission)
}

func TestMonstersAvailability(t *testing.T) {
	svc, _ := newTestService(t)
	svc.profile.Stats.Level = 9

	list, err := svc.Monsters()
	require.NoError(t, err)
	status := map[string]MonsterStatus{}
	for _, e := range list {
		status[e.ID] = e.Status
	}
	assert.Equal(t, MonsterAvailable, status["tank"])
	assert.Equal(t, MonsterAvailable, status["tusk"])
	assert.Equal(t, MonsterLocked, status["cerberus"])
	assert.Equal(t, MonsterLocked, status["shadow-sovereign"])
}
