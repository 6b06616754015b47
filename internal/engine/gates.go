package engine

import (
	"fmt"

	"hunterlog/internal/catalog"
)

// RankBreakpoints maps ranks to the minimum level that earns them.
// Ranks only move upward because levels never decrease.
var RankBreakpoints = []struct {
	Rank     catalog.Rank
	MinLevel int
}{
	{catalog.RankS, 40},
	{catalog.RankA, 30},
	{catalog.RankB, 20},
	{catalog.RankC, 10},
	{catalog.RankD, 5},
	{catalog.RankE, 1},
}

// RankForLevel returns the hunter rank for a level.
func RankForLevel(level int) catalog.Rank {
	for _, bp := range RankBreakpoints {
		if level >= bp.MinLevel {
			return bp.Rank
		}
	}
	return catalog.RankE
}

// NextRankLevel returns the level of the next rank promotion, or 0 at S.
func NextRankLevel(level int) int {
	next := 0
	for _, bp := range RankBreakpoints {
		if bp.MinLevel > level {
			next = bp.MinLevel
		}
	}
	return next
}

// CanStartMission returns an error if the level is below the mission requirement.
func CanStartMission(level int, m DungeonMission) error {
	if level < m.RequiredLevel {
		return LevelGateError{
			Feature:       fmt.Sprintf("mission %q", m.Title),
			RequiredLevel: m.RequiredLevel,
			CurrentLevel:  level,
		}
	}
	return nil
}

// CanEquip returns an error if the level is below the item requirement.
func CanEquip(level int, item catalog.RewardItem) error {
	if level < item.MinLevel() {
		return LevelGateError{
			Feature:       fmt.Sprintf("equipping %s", item.Name),
			RequiredLevel: item.MinLevel(),
			CurrentLevel:  level,
		}
	}
	return nil
}
