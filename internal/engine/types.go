package engine

import (
	"time"

	"hunterlog/internal/catalog"
)

type HabitCategory string

const (
	CategorySleep    HabitCategory = "sleep"
	CategoryWorkout  HabitCategory = "workout"
	CategoryHygiene  HabitCategory = "hygiene"
	CategorySkincare HabitCategory = "skincare"
	CategoryCustom   HabitCategory = "custom"
)

// Categories lists every habit category in display order.
var Categories = []HabitCategory{CategorySleep, CategoryWorkout, CategoryHygiene, CategorySkincare, CategoryCustom}

func (c HabitCategory) IsValid() bool {
	switch c {
	case CategorySleep, CategoryWorkout, CategoryHygiene, CategorySkincare, CategoryCustom:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory HabitCategory = CategoryCustom

type FrequencyType string

const (
	FrequencyDaily   FrequencyType = "daily"
	FrequencyWeekly  FrequencyType = "weekly"
	FrequencyMonthly FrequencyType = "monthly"
	FrequencyCustom  FrequencyType = "custom"
)

func (f FrequencyType) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	default:
		return false
	}
}

type Frequency struct {
	Type       FrequencyType `json:"type"`
	Value      int           `json:"value"`
	DaysOfWeek []int         `json:"daysOfWeek,omitempty"`
}

type Habit struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Category       HabitCategory `json:"category"`
	Description    string        `json:"description"`
	Frequency      Frequency     `json:"frequency"`
	IsActive       bool          `json:"isActive"`
	CreatedAt      time.Time     `json:"createdAt"`
	Streak         int           `json:"streak"`
	CompletedDates []string      `json:"completedDates"`
	XPReward       int           `json:"xpReward"`
	CompletionGoal *int          `json:"completionGoal,omitempty"`
	ActiveDays     []int         `json:"activeDays,omitempty"`
}

// CompletedOn reports whether day (YYYY-MM-DD) is in CompletedDates.
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

type HabitLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Value     *int      `json:"value,omitempty"`
}

type QuestType string

const (
	QuestDaily       QuestType = "daily"
	QuestWeekly      QuestType = "weekly"
	QuestAchievement QuestType = "achievement"
)

func (q QuestType) IsValid() bool {
	switch q {
	case QuestDaily, QuestWeekly, QuestAchievement:
		return true
	default:
		return false
	}
}

type Quest struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	HabitIDs         []string   `json:"habitIds"`
	XPReward         int        `json:"xpReward"`
	Completed        bool       `json:"completed"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	Type             QuestType  `json:"type"`
	Progress         int        `json:"progress"`
	RequiredProgress int        `json:"requiredProgress"`
	CreatedAt        time.Time  `json:"createdAt"`
	Penalty          string     `json:"penalty,omitempty"`
}

// Completable reports whether the quest may be completed now.
func (q Quest) Completable() bool {
	return !q.Completed && q.Progress >= q.RequiredProgress
}

// Expired reports whether an incomplete quest is past its expiry at now.
func (q Quest) Expired(now time.Time) bool {
	return !q.Completed && q.ExpiresAt != nil && q.ExpiresAt.Before(now)
}

func (q Quest) references(habitID string) bool {
	for _, id := range q.HabitIDs {
		if id == habitID {
			return true
		}
	}
	return false
}

type Stats struct {
	Level              int                   `json:"level"`
	XP                 int                   `json:"xp"`
	XPToNextLevel      int                   `json:"xpToNextLevel"`
	StreakRecord       int                   `json:"streakRecord"`
	TotalCompletions   int                   `json:"totalCompletions"`
	CompletionRate     int                   `json:"completionRate"`
	CategoriesProgress map[HabitCategory]int `json:"categoriesProgress"`
	DayStreak          int                   `json:"dayStreak"`
	LastActiveDate     string                `json:"lastActiveDate,omitempty"`
}

type Title struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rank        catalog.Rank `json:"rank"`
	UnlockedAt  *time.Time   `json:"unlockedAt,omitempty"`
}

type UserProfile struct {
	Username          string                      `json:"username"`
	Avatar            string                      `json:"avatar,omitempty"`
	Stats             Stats                       `json:"stats"`
	Achievements      []Achievement               `json:"achievements"`
	Inventory         []catalog.RewardItem        `json:"inventory"`
	EquippedItems     map[catalog.ItemType]string `json:"equippedItems"`
	JoinedAt          time.Time                   `json:"joinedAt"`
	Rank              catalog.Rank                `json:"rank"`
	Titles            []Title                     `json:"titles"`
	ActiveMission     *DungeonMission             `json:"activeMission,omitempty"`
	CompletedMissions []DungeonMission            `json:"completedMissions"`
}

// Owns reports whether an item id is in the inventory.
func (p UserProfile) Owns(itemID string) bool {
	for _, it := range p.Inventory {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

func (p UserProfile) ownedSet() map[string]bool {
	out := make(map[string]bool, len(p.Inventory))
	for _, it := range p.Inventory {
		out[it.ID] = true
	}
	return out
}

type NotificationType string

const (
	NotifyAchievement NotificationType = "achievement"
	NotifyLevelUp     NotificationType = "level-up"
	NotifyStreak      NotificationType = "streak"
	NotifyQuest       NotificationType = "quest"
	NotifyTip         NotificationType = "tip"
	NotifyPenalty     NotificationType = "penalty"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

type AchievementTier string

const (
	TierBronze   AchievementTier = "bronze"
	TierSilver   AchievementTier = "silver"
	TierGold     AchievementTier = "gold"
	TierPlatinum AchievementTier = "platinum"
)

type Achievement struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Icon             string          `json:"icon"`
	Tier             AchievementTier `json:"tier"`
	Progress         int             `json:"progress"`
	RequiredProgress int             `json:"requiredProgress"`
	XPReward         int             `json:"xpReward"`
	UnlockedAt       *time.Time      `json:"unlockedAt,omitempty"`
}

type MissionStatus string

const (
	MissionNotStarted MissionStatus = "not_started"
	MissionInProgress MissionStatus = "in_progress"
	MissionCompleted  MissionStatus = "completed"
	MissionFailed     MissionStatus = "failed"
)

// Terminal reports whether no further transitions are allowed.
func (s MissionStatus) Terminal() bool {
	return s == MissionCompleted || s == MissionFailed
}

type StepStatus string

const (
	StepNotStarted StepStatus = "not_started"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

type DungeonStep struct {
	ID              string     `json:"id"`
	Description     string     `json:"description"`
	HabitIDs        []string   `json:"habitIds"`
	QuestIDs        []string   `json:"questIds"`
	Status          StepStatus `json:"status"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	RequiredDays    int        `json:"requiredDays"`
	CurrentProgress int        `json:"currentProgress"`
}

type DungeonMission struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	MonsterID     string        `json:"monsterId"`
	Status        MissionStatus `json:"status"`
	Steps         []DungeonStep `json:"steps"`
	StartedAt     *time.Time    `json:"startedAt,omitempty"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	FailedAt      *time.Time    `json:"failedAt,omitempty"`
	DeadlineAt    *time.Time    `json:"deadlineAt,omitempty"`
	XPReward      int           `json:"xpReward"`
	RequiredLevel int           `json:"requiredLevel"`
	CreatedAt     time.Time     `json:"createdAt"`
	Penalty       int           `json:"penalty,omitempty"`
}

// CurrentStep returns the index of the in-progress step, or -1.
func (m DungeonMission) CurrentStep() int {
	for i, st := range m.Steps {
		if st.Status == StepInProgress {
			return i
		}
	}
	return -1
}

// CompletedSteps counts completed steps.
func (m DungeonMission) CompletedSteps() int {
	n := 0
	for _, st := range m.Steps {
		if st.Status == StepCompleted {
			n++
		}
	}
	return n
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
