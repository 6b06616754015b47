// Package storage persists the progression state as named JSON slots.
package storage

import "context"

// Slot keys. Each holds a JSON snapshot of one in-memory collection,
// except the two bookkeeping flags which hold plain strings.
const (
	KeyHabits           = "habits"
	KeyLogs             = "logs"
	KeyQuests           = "quests"
	KeyStats            = "stats"
	KeyNotifications    = "notifications"
	KeyAchievements     = "achievements"
	KeyUserProfile      = "userProfile"
	KeyFirstTimeUser    = "firstTimeUser"
	KeyLastPenaltyCheck = "lastPenaltyCheck"
)

// AllKeys lists every slot the engine owns.
var AllKeys = []string{
	KeyHabits,
	KeyLogs,
	KeyQuests,
	KeyStats,
	KeyNotifications,
	KeyAchievements,
	KeyUserProfile,
	KeyFirstTimeUser,
	KeyLastPenaltyCheck,
}

// Slots is a string-keyed store of string values. It serializes nothing and
// validates nothing.
type Slots interface {
	// Get returns the value for key; ok is false when the slot is empty.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// PutAll writes every entry of values.
	PutAll(ctx context.Context, values map[string]string) error
	// Delete removes the given keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
