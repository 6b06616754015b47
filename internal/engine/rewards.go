package engine

import (
	"fmt"

	"hunterlog/internal/catalog"
)

// grantXP awards xp, processes every level-up and rank change, and bumps
// category progress when category is set. Callers must hold s.mu.
func (s *Service) grantXP(fx *effects, amount int, category HabitCategory) XPGrant {
	st := &s.profile.Stats
	g := XPGrant{
		Amount:      amount,
		LevelBefore: st.Level,
		RankBefore:  s.profile.Rank,
	}

	st.Level, st.XP, st.XPToNextLevel = ApplyXP(st.Level, st.XP, st.XPToNextLevel, amount)
	g.LevelAfter = st.Level

	for lvl := g.LevelBefore + 1; lvl <= g.LevelAfter; lvl++ {
		s.notify(NotifyLevelUp, "Level Up!", fmt.Sprintf("You reached level %d!", lvl))
		fx.add(Event{Kind: EventLevelUp, Level: lvl, Message: fmt.Sprintf("Level %d reached", lvl)})
		if item, ok := s.grantRandomItem(fx, lvl); ok {
			g.Items = append(g.Items, item)
		}
	}

	if rank := RankForLevel(st.Level); rank.Ord() > s.profile.Rank.Ord() {
		s.profile.Rank = rank
		s.notify(NotifyLevelUp, "Rank Up!", fmt.Sprintf("Congratulations! You've been promoted to %s-Rank Hunter!", rank))
		fx.add(Event{Kind: EventRankUp, Rank: rank, Message: fmt.Sprintf("Promoted to %s-Rank", rank)})
	}
	g.RankAfter = s.profile.Rank

	if category != "" {
		if st.CategoriesProgress == nil {
			st.CategoriesProgress = map[HabitCategory]int{}
		}
		st.CategoriesProgress[category] = min(st.CategoriesProgress[category]+CategoryGain(amount), CategoryProgressMax)
	}
	st.TotalCompletions++

	s.log.Debugw("xp granted", "amount", amount, "level", st.Level, "xp", st.XP, "threshold", st.XPToNextLevel)
	return g
}

// deductXP removes XP without ever dropping a level.
func (s *Service) deductXP(amount int) int {
	var taken int
	s.profile.Stats.XP, taken = DeductXP(s.profile.Stats.XP, amount)
	return taken
}

// grantRandomItem adds one random eligible item not already owned.
func (s *Service) grantRandomItem(fx *effects, level int) (catalog.RewardItem, bool) {
	item, ok := catalog.RandomReward(level, s.profile.ownedSet(), s.rng)
	if !ok {
		return catalog.RewardItem{}, false
	}
	return s.addItem(fx, item), true
}

// addItem appends item to the inventory stamped with the unlock time.
func (s *Service) addItem(fx *effects, item catalog.RewardItem) catalog.RewardItem {
	item.UnlockedAt = ptrTime(s.clock())
	s.profile.Inventory = append(s.profile.Inventory, item)
	s.notify(NotifyAchievement, "New Item Acquired!",
		fmt.Sprintf("You've obtained %s (%s)!", item.Name, item.Rarity))
	fx.add(Event{Kind: EventItemGranted, Item: &item, Message: "Obtained " + item.Name})
	return item
}
