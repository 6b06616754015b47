package engine

import (
	"errors"
	"fmt"
)

var (
	ErrClosed = errors.New("progression store is closed")

	ErrHabitNotFound        = errors.New("habit not found")
	ErrQuestNotFound        = errors.New("quest not found")
	ErrQuestAlreadyComplete = errors.New("quest is already completed")
	ErrQuestNotReady        = errors.New("quest progress has not reached its requirement")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrItemNotOwned = errors.New("item is not in inventory")

	ErrMissionActive       = errors.New("a mission is already active")
	ErrNoActiveMission     = errors.New("no active mission")
	ErrMissionMismatch     = errors.New("mission is not the active mission")
	ErrMissionNotStartable = errors.New("mission has already been started or finished")
	ErrMissionNoSteps      = errors.New("mission has no steps")
	ErrStepNotFound        = errors.New("mission step not found")
	ErrStepNotInProgress   = errors.New("mission step is not in progress")
	ErrMonsterNotFound     = errors.New("monster not found")
)

// LevelGateError indicates an action is locked behind a required level.
// This is returned by gate checks and should be shown to the user.
type LevelGateError struct {
	Feature       string
	RequiredLevel int
	CurrentLevel  int
}

func (e LevelGateError) Error() string {
	return fmt.Sprintf("%s requires level %d (currently %d)", e.Feature, e.RequiredLevel, e.CurrentLevel)
}
