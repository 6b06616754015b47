package engine

import (
	"context"

	"hunterlog/internal/storage"
)

// DefaultHistoryLimit is the number of journal entries History returns
// when no positive limit is given.
const DefaultHistoryLimit = 20

// record appends events to the journal when the backend keeps one. A
// journal failure is logged; the state change has already been saved.
func (s *Service) record(ctx context.Context, events []Event) {
	if s.journal == nil || len(events) == 0 {
		return
	}
	at := s.clock()
	entries := make([]storage.JournalEntry, 0, len(events))
	for _, e := range events {
		entries = append(entries, storage.JournalEntry{
			Kind:    string(e.Kind),
			Message: e.Message,
			XP:      e.XP,
			RefID:   e.RefID,
			At:      at,
		})
	}
	if err := s.journal.Append(ctx, entries...); err != nil {
		s.log.Warnw("journal append failed", "events", len(entries), "error", err)
	}
}

// History returns recent progression events, newest first. It is empty
// when the backend keeps no journal.
func (s *Service) History(ctx context.Context, limit int) ([]storage.JournalEntry, error) {
	if err := s.view(func() {}); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.journal.Recent(ctx, limit)
}

// CompletionsSince counts habit completions recorded at or after the start
// of day (YYYY-MM-DD) in the service location.
func (s *Service) CompletionsSince(ctx context.Context, day string) (int, error) {
	if err := s.view(func() {}); err != nil {
		return 0, err
	}
	if s.journal == nil {
		return 0, nil
	}
	since, err := parseDay(day, s.loc)
	if err != nil {
		return 0, err
	}
	return s.journal.CountSince(ctx, string(EventHabitCompleted), since)
}
