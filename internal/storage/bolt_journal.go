package storage

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const journalBucket = "journal"

func journalKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

func (s *BoltSlots) Append(ctx context.Context, entries ...JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(journalBucket))
		if err != nil {
			return fmt.Errorf("journal bucket: %w", err)
		}
		for _, e := range entries {
			id, err := b.NextSequence()
			if err != nil {
				return fmt.Errorf("journal sequence: %w", err)
			}
			e.ID = int64(id)
			e.At = e.At.UTC()
			raw, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("journal encode: %w", err)
			}
			if err := b.Put(journalKey(id), raw); err != nil {
				return fmt.Errorf("journal insert: %w", err)
			}
		}
		return nil
	})
}

// scan walks the journal newest first until fn returns false.
func (s *BoltSlots) scan(fn func(JournalEntry) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(journalBucket))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var e JournalEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("journal decode: %w", err)
			}
			if !fn(e) {
				return nil
			}
		}
		return nil
	})
}

func (s *BoltSlots) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []JournalEntry
	err := s.scan(func(e JournalEntry) bool {
		if len(out) >= limit {
			return false
		}
		out = append(out, e)
		return true
	})
	return out, err
}

func (s *BoltSlots) CountSince(ctx context.Context, kind string, since time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	err := s.scan(func(e JournalEntry) bool {
		if e.Kind == kind && !e.At.Before(since) {
			n++
		}
		return true
	})
	return n, err
}

func (s *BoltSlots) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(journalBucket)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(journalBucket))
	})
}
