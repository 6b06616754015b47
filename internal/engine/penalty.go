package engine

import (
	"context"
	"fmt"
)

// MissedHabitPenalty is the XP deducted per missed active habit.
const MissedHabitPenalty = 1

type SweepResult struct {
	Date string
	// Skipped is set when the sweep already ran for Date.
	Skipped       bool
	ActiveHabits  int
	MissedHabits  []string
	XPDeducted    int
	ExpiredQuests []string
	FailedMission *MissionResult
	Events        []Event
}

// CheckIncompleteItems runs the daily penalty sweep at most once per
// calendar day. Active habits not completed today lose their streak and
// cost XP, expired quests are reported, and an active mission past its
// deadline fails with its XP penalty.
func (s *Service) CheckIncompleteItems(ctx context.Context) (*SweepResult, error) {
	fx := &effects{}
	res := &SweepResult{}
	err := s.mutate(ctx, func() error {
		now := s.clock()
		today := dayKey(now)
		res.Date = today
		if s.lastPenaltyCheck == today {
			res.Skipped = true
			return nil
		}
		s.lastPenaltyCheck = today

		weekday := now.Weekday()
		for i := range s.habits {
			h := &s.habits[i]
			if !h.IsActiveOn(weekday) {
				continue
			}
			res.ActiveHabits++
			if h.CompletedOn(today) {
				continue
			}
			h.Streak = 0
			res.MissedHabits = append(res.MissedHabits, h.ID)
		}
		if res.ActiveHabits > 0 {
			done := res.ActiveHabits - len(res.MissedHabits)
			s.profile.Stats.CompletionRate = done * 100 / res.ActiveHabits
		}
		if n := len(res.MissedHabits); n > 0 {
			res.XPDeducted = s.deductXP(n * MissedHabitPenalty)
			s.notify(NotifyPenalty, "Daily Habits Missed",
				fmt.Sprintf("You missed %d habit(s) today and lost %d XP. Streaks have been reset.", n, res.XPDeducted))
			fx.add(Event{Kind: EventPenalty, XP: res.XPDeducted,
				Message: fmt.Sprintf("Missed %d habit(s), -%d XP", n, res.XPDeducted)})
		}

		for _, q := range s.quests {
			if q.Expired(now) {
				res.ExpiredQuests = append(res.ExpiredQuests, q.ID)
			}
		}
		if n := len(res.ExpiredQuests); n > 0 {
			s.notify(NotifyPenalty, "Quests Failed", fmt.Sprintf("You failed to complete %d quest(s) before they expired.", n))
		}

		if m := s.profile.ActiveMission; m != nil && m.DeadlineAt != nil && m.DeadlineAt.Before(now) {
			penalty := m.Penalty
			mr := s.failMission(fx, "Mission deadline passed")
			mr.Penalty = s.deductXP(penalty)
			res.FailedMission = mr
		}

		s.log.Infow("penalty sweep",
			"date", today,
			"missed", len(res.MissedHabits),
			"xp_deducted", res.XPDeducted,
			"expired_quests", len(res.ExpiredQuests),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	return res, nil
}

// LastPenaltyCheck returns the day the sweep last ran, or "".
func (s *Service) LastPenaltyCheck() (string, error) {
	var out string
	err := s.view(func() { out = s.lastPenaltyCheck })
	return out, err
}
