package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]Slots {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	sq, err := OpenSQLiteSlots(ctx, filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	bo, err := OpenBoltSlots(filepath.Join(dir, "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bo.Close() })

	return map[string]Slots{"sqlite": sq, "bolt": bo}
}

func TestSlotsRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, KeyHabits)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.PutAll(ctx, map[string]string{
				KeyHabits: `[{"id":"h1"}]`,
				KeyStats:  `{"level":1}`,
			}))

			v, ok, err := s.Get(ctx, KeyHabits)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"id":"h1"}]`, v)

			require.NoError(t, s.PutAll(ctx, map[string]string{KeyHabits: `[]`}))
			v, _, err = s.Get(ctx, KeyHabits)
			require.NoError(t, err)
			assert.Equal(t, `[]`, v)

			require.NoError(t, s.Delete(ctx, KeyHabits, KeyLastPenaltyCheck))
			_, ok, err = s.Get(ctx, KeyHabits)
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err = s.Get(ctx, KeyStats)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"level":1}`, v)
		})
	}
}

func TestSQLiteSlotsPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := OpenSQLiteSlots(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.PutAll(ctx, map[string]string{KeyFirstTimeUser: "false"}))
	ts, err := s.UpdatedAt(ctx, KeyFirstTimeUser)
	require.NoError(t, err)
	assert.NotNil(t, ts)
	require.NoError(t, s.Close())

	s, err = OpenSQLiteSlots(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(ctx, KeyFirstTimeUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", v)
}

func TestOpenBoltSlotsRequiresPath(t *testing.T) {
	_, err := OpenBoltSlots("  ")
	assert.Error(t, err)
}

func TestJournalAppendRecentCount(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			j, ok := s.(Journal)
			require.True(t, ok)

			recent, err := j.Recent(ctx, 10)
			require.NoError(t, err)
			assert.Empty(t, recent)

			require.NoError(t, j.Append(ctx,
				JournalEntry{Kind: "habit_completed", Message: "a", XP: 50, RefID: "h1", At: base},
				JournalEntry{Kind: "level_up", Message: "b", At: base},
				JournalEntry{Kind: "habit_completed", Message: "c", XP: 50, RefID: "h2", At: base.Add(24 * time.Hour)},
			))

			recent, err = j.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "c", recent[0].Message)
			assert.Equal(t, "b", recent[1].Message)
			assert.Greater(t, recent[0].ID, recent[1].ID)

			n, err := j.CountSince(ctx, "habit_completed", base)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			n, err = j.CountSince(ctx, "habit_completed", base.Add(time.Hour))
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			require.NoError(t, j.Clear(ctx))
			recent, err = j.Recent(ctx, 10)
			require.NoError(t, err)
			assert.Empty(t, recent)
		})
	}
}
