package engine

import (
	"context"
	"slices"
)

// UpdateHabit replaces the editable fields of an existing habit. Streak,
// completed dates and creation time are kept.
func (s *Service) UpdateHabit(ctx context.Context, in Habit) (Habit, error) {
	if err := validateHabitFields(&in); err != nil {
		return Habit{}, err
	}
	var out Habit
	err := s.mutate(ctx, func() error {
		i := s.habitIndex(in.ID)
		if i < 0 {
			return ErrHabitNotFound
		}
		h := &s.habits[i]
		h.Name = in.Name
		h.Category = in.Category
		h.Description = in.Description
		h.Frequency = in.Frequency
		h.Frequency.DaysOfWeek = slices.Clone(in.Frequency.DaysOfWeek)
		h.XPReward = in.XPReward
		h.CompletionGoal = in.CompletionGoal
		h.ActiveDays = slices.Clone(in.ActiveDays)
		h.IsActive = in.IsActive
		out = cloneHabit(*h)
		return nil
	})
	return out, err
}

// DeleteHabit removes a habit, its log entries and its quest links.
func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	err := s.mutate(ctx, func() error {
		i := s.habitIndex(id)
		if i < 0 {
			return ErrHabitNotFound
		}
		s.habits = slices.Delete(s.habits, i, i+1)
		s.logs = slices.DeleteFunc(s.logs, func(l HabitLog) bool { return l.HabitID == id })
		for qi := range s.quests {
			s.quests[qi].HabitIDs = slices.DeleteFunc(s.quests[qi].HabitIDs, func(h string) bool { return h == id })
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Infow("habit deleted", "id", id)
	return nil
}
