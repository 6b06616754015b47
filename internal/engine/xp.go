package engine

import "math"

const (
	// BaseXPToNextLevel is the threshold from level 1 to level 2.
	BaseXPToNextLevel = 100

	// LevelGrowth multiplies the threshold after every level-up.
	LevelGrowth = 1.5

	// CategoryProgressMax caps per-category progress.
	CategoryProgressMax = 100
)

// NextThreshold returns the XP needed for the level after one with threshold t.
func NextThreshold(t int) int {
	return int(math.Round(float64(t) * LevelGrowth))
}

// ApplyXP adds delta to a (level, xp, threshold) triple and levels up while
// xp meets the threshold. The result always has xp < threshold.
func ApplyXP(level, xp, threshold, delta int) (int, int, int) {
	if threshold <= 0 {
		threshold = BaseXPToNextLevel
	}
	if level < 1 {
		level = 1
	}
	xp += delta
	if xp < 0 {
		xp = 0
	}
	for xp >= threshold {
		xp -= threshold
		level++
		threshold = NextThreshold(threshold)
	}
	return level, xp, threshold
}

// CategoryGain returns the category progress earned for an XP delta.
func CategoryGain(delta int) int {
	if delta <= 0 {
		return 0
	}
	return (delta + 9) / 10
}

// DeductXP removes up to amount XP from the current level. Levels are
// never lost.
func DeductXP(xp, amount int) (int, int) {
	if amount <= 0 {
		return xp, 0
	}
	if amount > xp {
		amount = xp
	}
	return xp - amount, amount
}

// InitialStats returns the stats of a brand-new hunter.
func InitialStats() Stats {
	cp := make(map[HabitCategory]int, len(Categories))
	for _, c := range Categories {
		cp[c] = 0
	}
	return Stats{
		Level:              1,
		XPToNextLevel:      BaseXPToNextLevel,
		CategoriesProgress: cp,
	}
}
