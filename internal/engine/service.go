package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hunterlog/internal/catalog"
	"hunterlog/internal/logging"
	"hunterlog/internal/random"
	"hunterlog/internal/storage"
)

// Service is the progression store. It owns the in-memory state, applies
// every mutation under a single lock and persists all slots afterwards.
type Service struct {
	mu      sync.Mutex
	slots   storage.Slots
	journal storage.Journal
	now     func() time.Time
	loc     *time.Location
	rng     *rand.Rand
	log     *zap.SugaredLogger
	closed  bool

	habits        []Habit
	logs          []HabitLog
	quests        []Quest
	notifications []Notification
	profile       UserProfile

	newUser          bool
	lastPenaltyCheck string
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone used for calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithRand sets the random source used for reward drops.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Service) { s.log = l }
}

// Open loads the persisted state from slots. Missing slots fall back to
// defaults; malformed slot values are reported as errors.
func Open(ctx context.Context, slots storage.Slots, opts ...Option) (*Service, error) {
	s := &Service{
		slots: slots,
		now:   time.Now,
		loc:   time.Local,
		log:   logging.FromContext(ctx),
	}
	if j, ok := slots.(storage.Journal); ok {
		s.journal = j
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		r, err := random.New()
		if err != nil {
			return nil, err
		}
		s.rng = r
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Close releases the underlying slot store.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.slots.Close()
}

func (s *Service) defaults() {
	s.habits = []Habit{}
	s.logs = []HabitLog{}
	s.quests = []Quest{}
	s.notifications = []Notification{}
	s.profile = defaultProfile(s.clock())
	s.newUser = true
	s.lastPenaltyCheck = ""
}

func defaultProfile(now time.Time) UserProfile {
	return UserProfile{
		Username:          "New Hunter",
		Stats:             InitialStats(),
		Achievements:      []Achievement{},
		Inventory:         []catalog.RewardItem{},
		EquippedItems:     map[catalog.ItemType]string{},
		JoinedAt:          now,
		Rank:              RankForLevel(1),
		Titles:            []Title{},
		CompletedMissions: []DungeonMission{},
	}
}

func (s *Service) load(ctx context.Context) error {
	s.defaults()

	read := func(key string, dst any) (bool, error) {
		raw, ok, err := s.slots.Get(ctx, key)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return false, fmt.Errorf("decode %s: %w", key, err)
		}
		return true, nil
	}

	if _, err := read(storage.KeyHabits, &s.habits); err != nil {
		return err
	}
	if _, err := read(storage.KeyLogs, &s.logs); err != nil {
		return err
	}
	if _, err := read(storage.KeyQuests, &s.quests); err != nil {
		return err
	}
	if _, err := read(storage.KeyNotifications, &s.notifications); err != nil {
		return err
	}
	if _, err := read(storage.KeyUserProfile, &s.profile); err != nil {
		return err
	}

	// The stats and achievements slots win over the copies inside the profile.
	var stats Stats
	if ok, err := read(storage.KeyStats, &stats); err != nil {
		return err
	} else if ok {
		s.profile.Stats = stats
	}
	var achievements []Achievement
	if ok, err := read(storage.KeyAchievements, &achievements); err != nil {
		return err
	} else if ok {
		s.profile.Achievements = achievements
	}

	var firstTime string
	if ok, err := read(storage.KeyFirstTimeUser, &firstTime); err != nil {
		return err
	} else if ok {
		s.newUser = firstTime != "false"
	}
	if _, err := read(storage.KeyLastPenaltyCheck, &s.lastPenaltyCheck); err != nil {
		return err
	}

	s.normalize()
	s.log.Debugw("progression state loaded",
		"habits", len(s.habits),
		"quests", len(s.quests),
		"level", s.profile.Stats.Level,
	)
	return nil
}

// normalize repairs fields that older or hand-edited state may lack.
func (s *Service) normalize() {
	if s.habits == nil {
		s.habits = []Habit{}
	}
	if s.logs == nil {
		s.logs = []HabitLog{}
	}
	if s.quests == nil {
		s.quests = []Quest{}
	}
	if s.notifications == nil {
		s.notifications = []Notification{}
	}
	st := &s.profile.Stats
	if st.Level < 1 {
		st.Level = 1
	}
	if st.XPToNextLevel <= 0 {
		st.XPToNextLevel = BaseXPToNextLevel
	}
	if st.CategoriesProgress == nil {
		st.CategoriesProgress = map[HabitCategory]int{}
	}
	if s.profile.EquippedItems == nil {
		s.profile.EquippedItems = map[catalog.ItemType]string{}
	}
	if !s.profile.Rank.IsValid() {
		s.profile.Rank = RankForLevel(st.Level)
	}
	if s.profile.Achievements == nil {
		s.profile.Achievements = []Achievement{}
	}
	if s.profile.Titles == nil {
		s.profile.Titles = []Title{}
	}
	if s.profile.CompletedMissions == nil {
		s.profile.CompletedMissions = []DungeonMission{}
	}
}

// save writes every slot. Callers must hold s.mu.
func (s *Service) save(ctx context.Context) error {
	values := make(map[string]string, len(storage.AllKeys))
	put := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		values[key] = string(b)
		return nil
	}

	for key, v := range map[string]any{
		storage.KeyHabits:        s.habits,
		storage.KeyLogs:          s.logs,
		storage.KeyQuests:        s.quests,
		storage.KeyStats:         s.profile.Stats,
		storage.KeyNotifications: s.notifications,
		storage.KeyAchievements:  s.profile.Achievements,
		storage.KeyUserProfile:   s.profile,
	} {
		if err := put(key, v); err != nil {
			return err
		}
	}
	if !s.newUser {
		if err := put(storage.KeyFirstTimeUser, "false"); err != nil {
			return err
		}
	}
	if s.lastPenaltyCheck != "" {
		if err := put(storage.KeyLastPenaltyCheck, s.lastPenaltyCheck); err != nil {
			return err
		}
	}
	if err := s.slots.PutAll(ctx, values); err != nil {
		return fmt.Errorf("persist progression state: %w", err)
	}
	return nil
}

// mutate runs fn under the lock and persists on success.
func (s *Service) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := fn(); err != nil {
		return err
	}
	return s.save(ctx)
}

// view runs fn under the lock without persisting.
func (s *Service) view(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	fn()
	return nil
}

func (s *Service) clock() time.Time {
	return s.now().In(s.loc)
}

// Today returns the current calendar day key.
func (s *Service) Today() string {
	return dayKey(s.clock())
}

// Location returns the zone used for calendar days.
func (s *Service) Location() *time.Location { return s.loc }

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func parseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t, nil
}

func newID() string {
	return uuid.NewString()
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}
