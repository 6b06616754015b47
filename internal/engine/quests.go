package engine

import (
	"fmt"
	"slices"
)

// Quests returns every quest.
func (s *Service) Quests() ([]Quest, error) {
	var out []Quest
	err := s.view(func() {
		out = make([]Quest, len(s.quests))
		for i, q := range s.quests {
			out[i] = cloneQuest(q)
		}
	})
	return out, err
}

// Quest returns one quest by id.
func (s *Service) Quest(id string) (Quest, error) {
	var (
		out Quest
		ok  bool
	)
	if err := s.view(func() {
		if i := s.questIndex(id); i >= 0 {
			out, ok = cloneQuest(s.quests[i]), true
		}
	}); err != nil {
		return Quest{}, err
	}
	if !ok {
		return Quest{}, ErrQuestNotFound
	}
	return out, nil
}

func (s *Service) questIndex(id string) int {
	return slices.IndexFunc(s.quests, func(q Quest) bool { return q.ID == id })
}

func cloneQuest(q Quest) Quest {
	q.HabitIDs = slices.Clone(q.HabitIDs)
	return q
}

// advanceQuests adds one progress unit to every incomplete quest linked to
// habitID. Quests that cross their threshold become completable; they are
// never completed here.
func (s *Service) advanceQuests(fx *effects, habitID string) (advanced, ready []string) {
	for i := range s.quests {
		q := &s.quests[i]
		if q.Completed || !q.references(habitID) {
			continue
		}
		wasReady := q.Progress >= q.RequiredProgress
		q.Progress++
		advanced = append(advanced, q.ID)
		if !wasReady && q.Progress >= q.RequiredProgress {
			ready = append(ready, q.ID)
			fx.add(Event{Kind: EventQuestReady, RefID: q.ID, Message: fmt.Sprintf("Quest %q is ready to complete", q.Title)})
		}
	}
	return advanced, ready
}
