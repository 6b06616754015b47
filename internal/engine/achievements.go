package engine

import (
	"fmt"
	"slices"
)

// AchievementDef describes one rung of the completion ladder.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Tier        AchievementTier
	Required    int
	XPReward    int
}

// DefaultAchievements is the ladder seeded into a new profile. Each habit
// completion advances the first rung that is still locked.
func DefaultAchievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first-step", Title: "First Step", Description: "Complete your first habit", Icon: "🌱", Tier: TierBronze, Required: 1, XPReward: 10},
		{ID: "awakened", Title: "Awakened", Description: "Complete 5 habits", Icon: "✨", Tier: TierBronze, Required: 5, XPReward: 25},
		{ID: "e-rank-grinder", Title: "E-Rank Grinder", Description: "Complete 10 habits", Icon: "⚔️", Tier: TierSilver, Required: 10, XPReward: 50},
		{ID: "gate-breaker", Title: "Gate Breaker", Description: "Complete 25 habits", Icon: "🚪", Tier: TierGold, Required: 25, XPReward: 100},
		{ID: "shadow-monarch", Title: "Shadow Monarch", Description: "Complete 50 habits", Icon: "👑", Tier: TierPlatinum, Required: 50, XPReward: 250},
	}
}

func seedAchievements() []Achievement {
	defs := DefaultAchievements()
	out := make([]Achievement, len(defs))
	for i, d := range defs {
		out[i] = Achievement{
			ID:               d.ID,
			Title:            d.Title,
			Description:      d.Description,
			Icon:             d.Icon,
			Tier:             d.Tier,
			RequiredProgress: d.Required,
			XPReward:         d.XPReward,
		}
	}
	return out
}

// AchievementProgress reports the effect of one completion on the ladder.
type AchievementProgress struct {
	ID       string
	Progress int
	Required int
	Unlocked bool
	XP       *XPGrant
}

// advanceAchievement moves the oldest locked achievement forward by one and
// unlocks it at its threshold. Callers must hold s.mu.
func (s *Service) advanceAchievement(fx *effects) *AchievementProgress {
	i := slices.IndexFunc(s.profile.Achievements, func(a Achievement) bool { return a.UnlockedAt == nil })
	if i < 0 {
		return nil
	}
	a := &s.profile.Achievements[i]
	a.Progress = min(a.Progress+1, a.RequiredProgress)
	out := &AchievementProgress{ID: a.ID, Progress: a.Progress, Required: a.RequiredProgress}
	if a.Progress < a.RequiredProgress {
		return out
	}

	a.UnlockedAt = ptrTime(s.clock())
	title, xp := a.Title, a.XPReward
	out.Unlocked = true
	s.notify(NotifyAchievement, "Achievement Unlocked!", fmt.Sprintf("You unlocked %q (+%d XP)", title, xp))
	fx.add(Event{Kind: EventAchievementUnlocked, RefID: a.ID, XP: xp, Message: "Achievement unlocked: " + title})
	if xp > 0 {
		g := s.grantXP(fx, xp, "")
		out.XP = &g
	}
	return out
}

// Achievements returns the profile's achievement list.
func (s *Service) Achievements() ([]Achievement, error) {
	var out []Achievement
	err := s.view(func() { out = slices.Clone(s.profile.Achievements) })
	return out, err
}
