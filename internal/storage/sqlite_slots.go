package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SQLiteSlots struct {
	db *sql.DB
}

func NewSQLiteSlots(db *sql.DB) *SQLiteSlots {
	return &SQLiteSlots{db: db}
}

// OpenSQLiteSlots opens the database at path and returns a slot store that
// owns it.
func OpenSQLiteSlots(ctx context.Context, path string) (*SQLiteSlots, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteSlots(db), nil
}

func (s *SQLiteSlots) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("slot get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *SQLiteSlots) PutAll(ctx context.Context, values map[string]string) error {
	now := time.Now().UTC()
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for k, v := range values {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
			`, k, v, now)
			if err != nil {
				return fmt.Errorf("slot put %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *SQLiteSlots) Delete(ctx context.Context, keys ...string) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, k); err != nil {
				return fmt.Errorf("slot delete %s: %w", k, err)
			}
		}
		return nil
	})
}

// UpdatedAt reports when key was last written.
func (s *SQLiteSlots) UpdatedAt(ctx context.Context, key string) (*time.Time, error) {
	row := s.db.QueryRowContext(ctx, `SELECT updated_at FROM slots WHERE key = ?`, key)
	var ts sql.NullTime
	if err := row.Scan(&ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("slot updated_at %s: %w", key, err)
	}
	if !ts.Valid {
		return nil, nil
	}
	return &ts.Time, nil
}

func (s *SQLiteSlots) Close() error {
	return s.db.Close()
}
