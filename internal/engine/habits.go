package engine

import (
	"slices"
	"time"
)

// IsActiveOn reports whether the habit is scheduled on the given weekday.
// Daily, weekly and monthly habits are always shown; custom habits use
// ActiveDays, falling back to Frequency.DaysOfWeek. A custom habit with
// no day list is treated as every day.
func (h Habit) IsActiveOn(day time.Weekday) bool {
	switch h.Frequency.Type {
	case "", FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	case FrequencyCustom:
		days := h.ActiveDays
		if len(days) == 0 {
			days = h.Frequency.DaysOfWeek
		}
		if len(days) == 0 {
			return true
		}
		return slices.Contains(days, int(day))
	default:
		return true
	}
}

// ActiveHabits returns the habits scheduled for today.
func (s *Service) ActiveHabits() ([]Habit, error) {
	var out []Habit
	err := s.view(func() { out = s.activeHabitsOn(s.clock().Weekday()) })
	return out, err
}

func (s *Service) activeHabitsOn(day time.Weekday) []Habit {
	out := []Habit{}
	for _, h := range s.habits {
		if h.IsActiveOn(day) {
			out = append(out, cloneHabit(h))
		}
	}
	return out
}

// Habits returns every habit.
func (s *Service) Habits() ([]Habit, error) {
	var out []Habit
	err := s.view(func() {
		out = make([]Habit, len(s.habits))
		for i, h := range s.habits {
			out[i] = cloneHabit(h)
		}
	})
	return out, err
}

// Habit returns one habit by id.
func (s *Service) Habit(id string) (Habit, error) {
	var (
		out Habit
		ok  bool
	)
	if err := s.view(func() {
		if i := s.habitIndex(id); i >= 0 {
			out, ok = cloneHabit(s.habits[i]), true
		}
	}); err != nil {
		return Habit{}, err
	}
	if !ok {
		return Habit{}, ErrHabitNotFound
	}
	return out, nil
}

// Logs returns the habit audit log, optionally filtered to one habit.
func (s *Service) Logs(habitID string) ([]HabitLog, error) {
	var out []HabitLog
	err := s.view(func() {
		for _, l := range s.logs {
			if habitID == "" || l.HabitID == habitID {
				out = append(out, l)
			}
		}
	})
	return out, err
}

func (s *Service) habitIndex(id string) int {
	return slices.IndexFunc(s.habits, func(h Habit) bool { return h.ID == id })
}

func cloneHabit(h Habit) Habit {
	h.CompletedDates = slices.Clone(h.CompletedDates)
	h.ActiveDays = slices.Clone(h.ActiveDays)
	h.Frequency.DaysOfWeek = slices.Clone(h.Frequency.DaysOfWeek)
	if h.CompletionGoal != nil {
		g := *h.CompletionGoal
		h.CompletionGoal = &g
	}
	return h
}

func validWeekdays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}
