package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterlog/internal/engine"
	"hunterlog/internal/random"
	"hunterlog/internal/storage"
)

func newTestBoard(t *testing.T) (boardModel, *engine.Service) {
	t.Helper()
	ctx := context.Background()
	slots, err := storage.OpenSQLiteSlots(ctx, filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	svc, err := engine.Open(ctx, slots,
		engine.WithClock(func() time.Time { return now }),
		engine.WithLocation(time.UTC),
		engine.WithRand(random.Fixed(3)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return newBoardModel(ctx, svc), svc
}

func step(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(boardModel), cmd
}

func TestBoardCompletesSelectedHabit(t *testing.T) {
	m, svc := newTestBoard(t)
	ctx := context.Background()
	h, err := svc.AddHabit(ctx, engine.NewHabit{Name: "Push-ups", Category: engine.CategoryWorkout})
	require.NoError(t, err)

	m, _ = step(t, m, m.loadCmd()())
	require.Len(t, m.habits, 1)
	assert.Contains(t, m.View(), "Push-ups")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())
	assert.Contains(t, m.lastLog, "Push-ups completed")
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	got, err := svc.Habit(h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Streak)
	assert.Contains(t, m.View(), "[x] Push-ups")

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Nil(t, cmd)
	assert.Equal(t, "Already done today.", m.lastLog)
}

func TestBoardQuestPaneRequiresProgress(t *testing.T) {
	m, svc := newTestBoard(t)
	ctx := context.Background()
	h, err := svc.AddHabit(ctx, engine.NewHabit{Name: "Read"})
	require.NoError(t, err)
	_, err = svc.AddQuest(ctx, engine.NewQuest{Title: "Bookworm", HabitIDs: []string{h.ID}, RequiredProgress: 2})
	require.NoError(t, err)

	m, _ = step(t, m, m.loadCmd()())
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, paneQuests, m.focus)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Nil(t, cmd)
	assert.Contains(t, m.lastLog, "needs 0/2")
}

func TestProgressBarBounds(t *testing.T) {
	assert.Equal(t, "[------]", progressBar(-1, 10, 6))
	assert.Equal(t, "[######]", progressBar(50, 10, 6))
	assert.Equal(t, "[###---]", progressBar(1, 2, 6))
}
