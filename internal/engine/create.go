package engine

import (
	"context"
	"fmt"
	"slices"
	"time"
)

const (
	DefaultHabitXP          = 50
	DefaultQuestXP          = 3
	DefaultRequiredProgress = 1
)

type NewHabit struct {
	Name           string
	Description    string
	Category       HabitCategory
	Frequency      Frequency
	XPReward       int
	CompletionGoal *int
	ActiveDays     []int
}

type NewQuest struct {
	Title            string
	Description      string
	HabitIDs         []string
	XPReward         int
	Type             QuestType
	RequiredProgress int
	ExpiresAt        *time.Time
	Penalty          string
}

// validateHabitFields normalizes the user-editable part of a habit.
func validateHabitFields(h *Habit) error {
	name, err := normalizeTitle(h.Name)
	if err != nil {
		return err
	}
	h.Name = name
	if !h.Category.IsValid() {
		h.Category = DefaultCategory
	}
	if h.Frequency.Type == "" {
		h.Frequency.Type = FrequencyDaily
	}
	if !h.Frequency.Type.IsValid() {
		return fmt.Errorf("invalid frequency: %q", h.Frequency.Type)
	}
	if h.Frequency.Value <= 0 {
		h.Frequency.Value = 1
	}
	if !validWeekdays(h.ActiveDays) || !validWeekdays(h.Frequency.DaysOfWeek) {
		return fmt.Errorf("weekdays must be between 0 (Sunday) and 6 (Saturday)")
	}
	if h.XPReward <= 0 {
		h.XPReward = DefaultHabitXP
	}
	if h.CompletionGoal != nil && *h.CompletionGoal <= 0 {
		return fmt.Errorf("completion goal must be positive")
	}
	return nil
}

// AddHabit creates a habit with a zero streak.
func (s *Service) AddHabit(ctx context.Context, in NewHabit) (Habit, error) {
	h := Habit{
		ID:             newID(),
		Name:           in.Name,
		Category:       in.Category,
		Description:    in.Description,
		Frequency:      in.Frequency,
		IsActive:       true,
		Streak:         0,
		CompletedDates: []string{},
		XPReward:       in.XPReward,
		CompletionGoal: in.CompletionGoal,
		ActiveDays:     slices.Clone(in.ActiveDays),
	}
	if err := validateHabitFields(&h); err != nil {
		return Habit{}, err
	}
	err := s.mutate(ctx, func() error {
		h.CreatedAt = s.clock()
		s.habits = append(s.habits, h)
		return nil
	})
	if err != nil {
		return Habit{}, err
	}
	s.log.Infow("habit added", "id", h.ID, "name", h.Name, "category", h.Category)
	return cloneHabit(h), nil
}

// AddQuest creates a quest. Linked habits must exist.
func (s *Service) AddQuest(ctx context.Context, in NewQuest) (Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return Quest{}, err
	}
	qt := in.Type
	if qt == "" {
		qt = QuestDaily
	}
	if !qt.IsValid() {
		return Quest{}, fmt.Errorf("invalid quest type: %q", in.Type)
	}
	q := Quest{
		ID:               newID(),
		Title:            title,
		Description:      in.Description,
		HabitIDs:         slices.Clone(in.HabitIDs),
		XPReward:         in.XPReward,
		Type:             qt,
		RequiredProgress: in.RequiredProgress,
		ExpiresAt:        in.ExpiresAt,
		Penalty:          in.Penalty,
	}
	if q.HabitIDs == nil {
		q.HabitIDs = []string{}
	}
	if q.XPReward <= 0 {
		q.XPReward = DefaultQuestXP
	}
	if q.RequiredProgress <= 0 {
		q.RequiredProgress = DefaultRequiredProgress
	}

	err = s.mutate(ctx, func() error {
		for _, id := range q.HabitIDs {
			if s.habitIndex(id) < 0 {
				return fmt.Errorf("quest habit %s: %w", id, ErrHabitNotFound)
			}
		}
		q.CreatedAt = s.clock()
		s.quests = append(s.quests, q)
		s.notify(NotifyQuest, "New Quest Added", fmt.Sprintf("A new quest has been added: %s", q.Title))
		return nil
	})
	if err != nil {
		return Quest{}, err
	}
	s.log.Infow("quest added", "id", q.ID, "title", q.Title)
	return cloneQuest(q), nil
}
