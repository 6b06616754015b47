package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const slotBucket = "slots"

// BoltSlots is a bbolt-backed slot store.
type BoltSlots struct {
	db *bbolt.DB
}

// OpenBoltSlots opens a bbolt file at path and ensures the slot bucket.
func OpenBoltSlots(path string) (*BoltSlots, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(slotBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slot bucket: %w", err)
	}
	return &BoltSlots{db: db}, nil
}

func (s *BoltSlots) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	var (
		v  string
		ok bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(slotBucket)).Get([]byte(key))
		if raw != nil {
			v, ok = string(raw), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("slot get %s: %w", key, err)
	}
	return v, ok, nil
}

func (s *BoltSlots) PutAll(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(slotBucket))
		for k, v := range values {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return fmt.Errorf("slot put %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (s *BoltSlots) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(slotBucket))
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return fmt.Errorf("slot delete %s: %w", k, err)
			}
		}
		return nil
	})
}

func (s *BoltSlots) Close() error {
	return s.db.Close()
}
