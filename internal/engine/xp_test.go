package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterlog/internal/catalog"
)

func TestNextThreshold(t *testing.T) {
	got := []int{BaseXPToNextLevel}
	for i := 0; i < 4; i++ {
		got = append(got, NextThreshold(got[len(got)-1]))
	}
	assert.Equal(t, []int{100, 150, 225, 338, 507}, got)
}

func TestApplyXPMultiLevel(t *testing.T) {
	level, xp, threshold := ApplyXP(1, 0, 100, 260)
	assert.Equal(t, 3, level)
	assert.Equal(t, 10, xp)
	assert.Equal(t, 225, threshold)
}

func TestApplyXPIndependentOfPartitioning(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7))
		total := rng.IntN(5000)

		wantL, wantX, wantT := ApplyXP(1, 0, BaseXPToNextLevel, total)

		l, x, th := 1, 0, BaseXPToNextLevel
		remaining := total
		for remaining > 0 {
			d := 1 + rng.IntN(remaining)
			l, x, th = ApplyXP(l, x, th, d)
			remaining -= d
		}
		require.Equal(t, []int{wantL, wantX, wantT}, []int{l, x, th}, "seed %d total %d", seed, total)
		require.Less(t, x, th)
	}
}

func TestRankForLevelBreakpoints(t *testing.T) {
	cases := map[int]catalog.Rank{
		1: catalog.RankE, 4: catalog.RankE,
		5: catalog.RankD, 9: catalog.RankD,
		10: catalog.RankC, 19: catalog.RankC,
		20: catalog.RankB, 29: catalog.RankB,
		30: catalog.RankA, 39: catalog.RankA,
		40: catalog.RankS, 99: catalog.RankS,
	}
	for level, want := range cases {
		assert.Equal(t, want, RankForLevel(level), "level %d", level)
	}

	prev := RankForLevel(1)
	for level := 2; level <= 60; level++ {
		r := RankForLevel(level)
		require.GreaterOrEqual(t, r.Ord(), prev.Ord(), "rank decreased at level %d", level)
		prev = r
	}
}

func TestCategoryGain(t *testing.T) {
	assert.Equal(t, 0, CategoryGain(0))
	assert.Equal(t, 1, CategoryGain(1))
	assert.Equal(t, 1, CategoryGain(10))
	assert.Equal(t, 2, CategoryGain(11))
	assert.Equal(t, 5, CategoryGain(50))
}

func TestDeductXPFloorsAtZero(t *testing.T) {
	xp, taken := DeductXP(3, 5)
	assert.Equal(t, 0, xp)
	assert.Equal(t, 3, taken)
}

func TestNextRankLevel(t *testing.T) {
	assert.Equal(t, 5, NextRankLevel(1))
	assert.Equal(t, 10, NextRankLevel(5))
	assert.Equal(t, 0, NextRankLevel(40))
}
