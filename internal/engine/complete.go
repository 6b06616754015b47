package engine

import (
	"context"
	"fmt"
	"time"

	"hunterlog/internal/catalog"
)

type HabitResult struct {
	HabitID string
	Date    string

	// AlreadyCompleted is set when the habit was done earlier today; nothing changed.
	AlreadyCompleted bool
	// Partial is set when the value was below the completion goal; only a log entry was written.
	Partial bool
	Value   *int
	Goal    int

	Streak         int
	XP             XPGrant
	QuestsAdvanced []string
	QuestsReady    []string
	Mission        *MissionResult
	Achievement    *AchievementProgress
	Events         []Event
}

// CompleteHabit records today's completion of a habit. A value below the
// habit's completion goal only records partial progress.
func (s *Service) CompleteHabit(ctx context.Context, habitID string, value *int) (*HabitResult, error) {
	fx := &effects{}
	res := &HabitResult{HabitID: habitID, Value: value}
	err := s.mutate(ctx, func() error {
		i := s.habitIndex(habitID)
		if i < 0 {
			return ErrHabitNotFound
		}
		now := s.clock()
		today := dayKey(now)
		res.Date = today

		h := &s.habits[i]
		if h.CompletedOn(today) {
			res.AlreadyCompleted = true
			res.Streak = h.Streak
			return nil
		}
		if h.CompletionGoal != nil {
			res.Goal = *h.CompletionGoal
			if value != nil && *value < *h.CompletionGoal {
				res.Partial = true
				res.Streak = h.Streak
				s.appendLog(habitID, now, false, value)
				fx.add(Event{Kind: EventHabitPartial, RefID: habitID,
					Message: fmt.Sprintf("%s: %d/%d", h.Name, *value, *h.CompletionGoal)})
				return nil
			}
		}

		h.Streak++
		h.CompletedDates = append(h.CompletedDates, today)
		res.Streak = h.Streak
		name, xp, category := h.Name, h.XPReward, h.Category
		fx.add(Event{Kind: EventHabitCompleted, RefID: habitID, XP: xp,
			Message: fmt.Sprintf("%s completed (+%d XP)", name, xp)})

		res.XP = s.grantXP(fx, xp, category)
		res.QuestsAdvanced, res.QuestsReady = s.advanceQuests(fx, habitID)

		if stepID, ok := s.stepFor(func(st DungeonStep) bool { return containsString(st.HabitIDs, habitID) }); ok {
			mr, err := s.applyStep(fx, stepID)
			if err != nil {
				return err
			}
			res.Mission = mr
		}

		res.Achievement = s.advanceAchievement(fx)
		s.touchStreaks(res.Streak, now)
		s.appendLog(habitID, now, true, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	if !res.AlreadyCompleted && !res.Partial {
		s.log.Infow("habit completed", "id", habitID, "streak", res.Streak, "level", res.XP.LevelAfter)
	}
	return res, nil
}

func (s *Service) appendLog(habitID string, at time.Time, completed bool, value *int) {
	var v *int
	if value != nil {
		n := *value
		v = &n
	}
	s.logs = append(s.logs, HabitLog{
		ID:        newID(),
		HabitID:   habitID,
		Date:      at,
		Completed: completed,
		Value:     v,
	})
}

// touchStreaks updates the best habit streak and the consecutive active-day
// counter.
func (s *Service) touchStreaks(habitStreak int, now time.Time) {
	st := &s.profile.Stats
	st.StreakRecord = max(st.StreakRecord, habitStreak)

	today := dayKey(now)
	if st.LastActiveDate == today {
		return
	}
	if st.LastActiveDate == dayKey(now.AddDate(0, 0, -1)) {
		st.DayStreak++
	} else {
		st.DayStreak = 1
	}
	st.LastActiveDate = today
	if st.DayStreak > 1 && st.DayStreak%7 == 0 {
		s.notify(NotifyStreak, "Streak!", fmt.Sprintf("You've been active %d days in a row!", st.DayStreak))
	}
}

type QuestResult struct {
	QuestID string
	XP      XPGrant
	Reward  *catalog.RewardItem
	Mission *MissionResult
	Events  []Event
}

// CompleteQuest completes a quest whose progress has reached its
// requirement, grants its XP and then one random reward item.
func (s *Service) CompleteQuest(ctx context.Context, questID string) (*QuestResult, error) {
	fx := &effects{}
	res := &QuestResult{QuestID: questID}
	err := s.mutate(ctx, func() error {
		i := s.questIndex(questID)
		if i < 0 {
			return ErrQuestNotFound
		}
		q := &s.quests[i]
		if q.Completed {
			return ErrQuestAlreadyComplete
		}
		if q.Progress < q.RequiredProgress {
			return ErrQuestNotReady
		}

		now := s.clock()
		q.Completed = true
		q.CompletedAt = ptrTime(now)
		title, xp := q.Title, q.XPReward
		fx.add(Event{Kind: EventQuestCompleted, RefID: questID, XP: xp, Message: fmt.Sprintf("Quest %q completed (+%d XP)", title, xp)})
		s.notify(NotifyQuest, "Quest Completed!", fmt.Sprintf("You completed %q and earned %d XP!", title, xp))

		res.XP = s.grantXP(fx, xp, "")
		if item, ok := s.grantRandomItem(fx, s.profile.Stats.Level); ok {
			res.Reward = &item
		}

		if stepID, ok := s.stepFor(func(st DungeonStep) bool { return containsString(st.QuestIDs, questID) }); ok {
			mr, err := s.applyStep(fx, stepID)
			if err != nil {
				return err
			}
			res.Mission = mr
		}
		return nil
	})
	if err != nil {
		s.log.Warnw("quest completion rejected", "id", questID, "error", err)
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	s.log.Infow("quest completed", "id", questID, "level", res.XP.LevelAfter)
	return res, nil
}
