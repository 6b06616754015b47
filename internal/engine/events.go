package engine

import "hunterlog/internal/catalog"

// EventKind identifies a state transition reported back to callers.
type EventKind string

const (
	EventHabitCompleted      EventKind = "habit_completed"
	EventHabitPartial        EventKind = "habit_partial"
	EventLevelUp             EventKind = "level_up"
	EventRankUp              EventKind = "rank_up"
	EventItemGranted         EventKind = "item_granted"
	EventQuestReady          EventKind = "quest_ready"
	EventQuestCompleted      EventKind = "quest_completed"
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	EventStepProgress        EventKind = "step_progress"
	EventStepCompleted       EventKind = "step_completed"
	EventMissionStarted      EventKind = "mission_started"
	EventMissionCompleted    EventKind = "mission_completed"
	EventMissionFailed       EventKind = "mission_failed"
	EventTitleEarned         EventKind = "title_earned"
	EventPenalty             EventKind = "penalty"
)

// Event describes one thing that happened during an operation, in order.
type Event struct {
	Kind    EventKind
	Message string

	Level int
	Rank  catalog.Rank
	Item  *catalog.RewardItem
	XP    int
	RefID string
}

// effects collects events across the nested transitions of one operation.
type effects struct {
	events []Event
}

func (f *effects) add(e Event) {
	f.events = append(f.events, e)
}

// XPGrant summarizes one XP award.
type XPGrant struct {
	Amount      int
	LevelBefore int
	LevelAfter  int
	RankBefore  catalog.Rank
	RankAfter   catalog.Rank
	Items       []catalog.RewardItem
}

func (g XPGrant) LevelsGained() int {
	return g.LevelAfter - g.LevelBefore
}

func (g XPGrant) RankChanged() bool {
	return g.RankBefore != g.RankAfter
}
