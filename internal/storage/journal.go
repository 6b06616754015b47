package storage

import (
	"context"
	"time"
)

// JournalEntry is one recorded progression event.
type JournalEntry struct {
	ID      int64
	Kind    string
	Message string
	XP      int
	RefID   string
	At      time.Time
}

// Journal is an append-only history of progression events. Backends that
// implement it alongside Slots get their events recorded.
type Journal interface {
	Append(ctx context.Context, entries ...JournalEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
	// CountSince counts entries of kind at or after since.
	CountSince(ctx context.Context, kind string, since time.Time) (int, error)
	Clear(ctx context.Context) error
}
