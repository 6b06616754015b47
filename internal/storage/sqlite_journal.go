package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

func (s *SQLiteSlots) Append(ctx context.Context, entries ...JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO journal (kind, message, xp, ref_id, at)
				VALUES (?, ?, ?, ?, ?)
			`, e.Kind, e.Message, e.XP, e.RefID, e.At.UTC())
			if err != nil {
				return fmt.Errorf("journal insert: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteSlots) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, message, xp, ref_id, at
		FROM journal
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal recent: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Message, &e.XP, &e.RefID, &e.At); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return out, nil
}

func (s *SQLiteSlots) CountSince(ctx context.Context, kind string, since time.Time) (int, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM journal
		WHERE kind = ? AND at >= ?
	`, kind, since.UTC())
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}

func (s *SQLiteSlots) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM journal`); err != nil {
		return fmt.Errorf("journal clear: %w", err)
	}
	return nil
}
