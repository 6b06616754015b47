package root

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterlog/internal/engine"
	"hunterlog/internal/storage"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func habitIDs(t *testing.T, db string) []string {
	t.Helper()
	ctx := context.Background()
	slots, err := storage.OpenSQLiteSlots(ctx, db)
	require.NoError(t, err)
	svc, err := engine.Open(ctx, slots)
	require.NoError(t, err)
	defer svc.Close()
	habits, err := svc.Habits()
	require.NoError(t, err)
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	return ids
}

func setEnv(t *testing.T) {
	t.Setenv("HUNTERLOG_DB", "")
	t.Setenv("HUNTERLOG_STORE", "")
	t.Setenv("HUNTERLOG_TZ", "UTC")
	t.Setenv("HUNTERLOG_LOG_LEVEL", "error")
}

func TestCLIHabitFlow(t *testing.T) {
	setEnv(t)
	db := filepath.Join(t.TempDir(), "hl.db")

	out, err := run(t, "--db", db, "init", "Jin-Woo")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Jin-Woo")
	assert.Contains(t, out, "weapon-1")

	_, err = run(t, "--db", db, "init", "Again")
	assert.ErrorContains(t, err, "already initialized")

	out, err = run(t, "--db", db, "habit", "add", "Morning", "run", "--category", "workout")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning run")

	out, err = run(t, "--db", db, "habit", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning run")

	ids := habitIDs(t, db)
	require.Len(t, ids, 1)

	out, err = run(t, "--db", db, "habit", "done", shortID(ids[0]))
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	out, err = run(t, "--db", db, "habit", "done", ids[0])
	require.NoError(t, err)
	assert.Contains(t, out, "Already completed")

	out, err = run(t, "--db", db, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Jin-Woo")
	assert.Contains(t, out, "Completions")

	out, err = run(t, "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning run completed")

	_, err = run(t, "--db", db, "habit", "done", "nope")
	assert.ErrorIs(t, err, errUnknownID)
	assert.True(t, isRejection(err))

	_, err = run(t, "--db", db, "habit", "rm", ids[0])
	require.NoError(t, err)
	assert.Empty(t, habitIDs(t, db))
}

func TestCLIMissionLevelGate(t *testing.T) {
	setEnv(t)
	db := filepath.Join(t.TempDir(), "hl.db")
	_, err := run(t, "--db", db, "init", "Hunter")
	require.NoError(t, err)

	_, err = run(t, "--db", db, "mission", "start", "tank")
	assert.ErrorContains(t, err, "--step")

	_, err = run(t, "--db", db, "mission", "start", "tank", "--step", "Train|2")
	var gate engine.LevelGateError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, 5, gate.RequiredLevel)

	_, err = run(t, "--db", db, "mission", "start", "nobody", "--step", "x")
	assert.ErrorIs(t, err, engine.ErrMonsterNotFound)

	out, err := run(t, "--db", db, "mission", "monsters")
	require.NoError(t, err)
	assert.Contains(t, out, "shadow-sovereign")
}

func TestCLIResetNeedsConfirmation(t *testing.T) {
	setEnv(t)
	db := filepath.Join(t.TempDir(), "hl.db")
	_, err := run(t, "--db", db, "init", "Hunter")
	require.NoError(t, err)

	_, err = run(t, "--db", db, "reset")
	assert.Error(t, err)

	_, err = run(t, "--db", db, "reset", "--yes")
	require.NoError(t, err)

	out, err := run(t, "--db", db, "inventory")
	require.NoError(t, err)
	assert.Contains(t, out, "Empty")
}

func TestCLIBoltStore(t *testing.T) {
	setEnv(t)
	db := filepath.Join(t.TempDir(), "hl.bolt")
	_, err := run(t, "--store", "bolt", "--db", db, "init", "Hunter")
	require.NoError(t, err)

	out, err := run(t, "--store", "bolt", "--db", db, "inventory")
	require.NoError(t, err)
	assert.Contains(t, out, "weapon-1")

	_, err = run(t, "--store", "bolt", "--db", db, "equip", "weapon-1")
	var gate engine.LevelGateError
	require.True(t, errors.As(err, &gate))
	assert.Equal(t, 2, gate.RequiredLevel)
	_, err = run(t, "--store", "bolt", "--db", db, "equip", "armor-1")
	assert.ErrorIs(t, err, engine.ErrItemNotOwned)

	out, err = run(t, "--store", "bolt", "--db", db, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "Penalty check")
	out, err = run(t, "--store", "bolt", "--db", db, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "Already checked")
}

func TestCLIRejectsUnknownStore(t *testing.T) {
	setEnv(t)
	_, err := run(t, "--store", "redis", "status")
	assert.ErrorContains(t, err, "invalid store")
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz"}

	id, err := resolveID("habit", ids, "xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", id)

	id, err = resolveID("habit", ids, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = resolveID("habit", ids, "ab")
	assert.ErrorIs(t, err, errAmbiguousID)

	_, err = resolveID("habit", ids, "q")
	assert.ErrorIs(t, err, errUnknownID)

	_, err = resolveID("habit", ids, " ")
	assert.Error(t, err)
}

func TestParseExpiry(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	at, err := parseExpiry("48h", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(48*time.Hour), at)

	at, err = parseExpiry("2024-03-06", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 6, 23, 59, 59, 0, time.UTC), at)

	_, err = parseExpiry("-1h", now)
	assert.Error(t, err)
	_, err = parseExpiry("soon", now)
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
