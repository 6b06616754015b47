package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hunterlog/internal/catalog"
)

const (
	// MissionDuration is the default time allowed to finish a mission.
	MissionDuration = 7 * 24 * time.Hour

	// DefaultMissionPenalty is the XP deducted when a mission expires.
	DefaultMissionPenalty = 5

	maxRandomStepDays = 3
)

type MonsterStatus string

const (
	MonsterLocked    MonsterStatus = "locked"
	MonsterAvailable MonsterStatus = "available"
	MonsterActive    MonsterStatus = "active"
	MonsterDefeated  MonsterStatus = "defeated"
)

// MonsterEntry is a catalog monster with its availability for the profile.
type MonsterEntry struct {
	catalog.Monster
	Status MonsterStatus
}

// Monsters lists the catalog with availability by level and history.
func (s *Service) Monsters() ([]MonsterEntry, error) {
	var out []MonsterEntry
	err := s.view(func() {
		defeated := map[string]bool{}
		for _, m := range s.profile.CompletedMissions {
			if m.Status == MissionCompleted {
				defeated[m.MonsterID] = true
			}
		}
		for _, m := range catalog.Monsters() {
			e := MonsterEntry{Monster: m, Status: MonsterAvailable}
			switch {
			case s.profile.ActiveMission != nil && s.profile.ActiveMission.MonsterID == m.ID:
				e.Status = MonsterActive
			case defeated[m.ID]:
				e.Status = MonsterDefeated
			case s.profile.Stats.Level < m.RequiredLevel:
				e.Status = MonsterLocked
			}
			out = append(out, e)
		}
	})
	return out, err
}

type MissionPlan struct {
	MonsterID   string
	Title       string
	Description string
	Steps       []StepPlan
}

type StepPlan struct {
	Description  string
	HabitIDs     []string
	QuestIDs     []string
	RequiredDays int
}

// PlanMission builds a not-started mission against a catalog monster.
// Steps without a required day count draw one from 1..3.
func (s *Service) PlanMission(in MissionPlan) (DungeonMission, error) {
	monster, ok := catalog.MonsterByID(in.MonsterID)
	if !ok {
		return DungeonMission{}, fmt.Errorf("%w: %s", ErrMonsterNotFound, in.MonsterID)
	}
	if len(in.Steps) == 0 {
		return DungeonMission{}, ErrMissionNoSteps
	}
	title := in.Title
	if title == "" {
		title = "Defeat " + monster.Name
	}
	desc := in.Description
	if desc == "" {
		desc = monster.Description
	}

	var m DungeonMission
	err := s.view(func() {
		now := s.clock()
		m = DungeonMission{
			ID:            newID(),
			Title:         title,
			Description:   desc,
			MonsterID:     monster.ID,
			Status:        MissionNotStarted,
			DeadlineAt:    ptrTime(now.Add(MissionDuration)),
			XPReward:      monster.XPReward,
			RequiredLevel: monster.RequiredLevel,
			CreatedAt:     now,
			Penalty:       DefaultMissionPenalty,
		}
		for _, sp := range in.Steps {
			days := sp.RequiredDays
			if days <= 0 {
				days = 1 + s.rng.IntN(maxRandomStepDays)
			}
			m.Steps = append(m.Steps, DungeonStep{
				ID:           newID(),
				Description:  sp.Description,
				HabitIDs:     nonNil(sp.HabitIDs),
				QuestIDs:     nonNil(sp.QuestIDs),
				Status:       StepNotStarted,
				RequiredDays: days,
			})
		}
	})
	return m, err
}

// StepOutcome describes one step transition.
type StepOutcome struct {
	MissionID        string
	StepID           string
	Progress         int
	Required         int
	StepCompleted    bool
	NextStepID       string
	MissionCompleted bool
}

// advanceStep adds one progress unit to an in-progress step. On reaching
// the required days the step completes and the next not-started step in
// list order is activated; with none left the mission is completed. The
// input mission is not modified.
func advanceStep(m DungeonMission, stepID string, now time.Time) (DungeonMission, StepOutcome, error) {
	if m.Status != MissionInProgress {
		return m, StepOutcome{}, ErrNoActiveMission
	}
	i := slices.IndexFunc(m.Steps, func(x DungeonStep) bool { return x.ID == stepID })
	if i < 0 {
		return m, StepOutcome{}, ErrStepNotFound
	}
	if m.Steps[i].Status != StepInProgress {
		return m, StepOutcome{}, ErrStepNotInProgress
	}

	m.Steps = slices.Clone(m.Steps)
	st := &m.Steps[i]
	st.CurrentProgress++
	out := StepOutcome{
		MissionID: m.ID,
		StepID:    st.ID,
		Progress:  st.CurrentProgress,
		Required:  st.RequiredDays,
	}
	if st.CurrentProgress < max(st.RequiredDays, 1) {
		return m, out, nil
	}

	st.Status = StepCompleted
	st.CompletedAt = ptrTime(now)
	out.StepCompleted = true

	if next := slices.IndexFunc(m.Steps, func(x DungeonStep) bool { return x.Status == StepNotStarted }); next >= 0 {
		m.Steps[next].Status = StepInProgress
		m.Steps[next].StartedAt = ptrTime(now)
		out.NextStepID = m.Steps[next].ID
		return m, out, nil
	}

	m.Status = MissionCompleted
	m.CompletedAt = ptrTime(now)
	out.MissionCompleted = true
	return m, out, nil
}

// MissionResult reports a mission transition.
type MissionResult struct {
	Mission   DungeonMission
	Step      *StepOutcome
	Completed bool
	Failed    bool
	XP        *XPGrant
	Items     []catalog.RewardItem
	Title     *Title
	Penalty   int
	Events    []Event
}

// ActiveMission returns the active mission, if any.
func (s *Service) ActiveMission() (*DungeonMission, error) {
	var out *DungeonMission
	err := s.view(func() {
		if s.profile.ActiveMission != nil {
			m := cloneMission(*s.profile.ActiveMission)
			out = &m
		}
	})
	return out, err
}

// MissionHistory returns completed and failed missions, oldest first.
func (s *Service) MissionHistory() ([]DungeonMission, error) {
	var out []DungeonMission
	err := s.view(func() {
		for _, m := range s.profile.CompletedMissions {
			out = append(out, cloneMission(m))
		}
	})
	return out, err
}

// StartDungeonMission makes m the active mission and activates its first step.
func (s *Service) StartDungeonMission(ctx context.Context, m DungeonMission) (*MissionResult, error) {
	fx := &effects{}
	res := &MissionResult{}
	err := s.mutate(ctx, func() error {
		if s.profile.ActiveMission != nil {
			return ErrMissionActive
		}
		if m.Status != "" && m.Status != MissionNotStarted {
			return ErrMissionNotStartable
		}
		if len(m.Steps) == 0 {
			return ErrMissionNoSteps
		}
		if err := CanStartMission(s.profile.Stats.Level, m); err != nil {
			return err
		}

		now := s.clock()
		m = cloneMission(m)
		if m.ID == "" {
			m.ID = newID()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		for i := range m.Steps {
			if m.Steps[i].ID == "" {
				m.Steps[i].ID = newID()
			}
			m.Steps[i].Status = StepNotStarted
			m.Steps[i].CurrentProgress = 0
		}
		m.Status = MissionInProgress
		m.StartedAt = ptrTime(now)
		m.Steps[0].Status = StepInProgress
		m.Steps[0].StartedAt = ptrTime(now)

		s.profile.ActiveMission = &m
		s.notify(NotifyQuest, "New Mission Started", fmt.Sprintf("You've started the mission: %s", m.Title))
		fx.add(Event{Kind: EventMissionStarted, RefID: m.ID, Message: "Mission started: " + m.Title})
		res.Mission = cloneMission(m)
		return nil
	})
	if err != nil {
		s.log.Warnw("mission start rejected", "mission", m.Title, "error", err)
		return nil, err
	}
	s.log.Infow("mission started", "id", res.Mission.ID, "monster", res.Mission.MonsterID)
	res.Events = fx.events
	s.record(ctx, fx.events)
	return res, nil
}

// CompleteMissionStep advances an in-progress step of the active mission.
func (s *Service) CompleteMissionStep(ctx context.Context, missionID, stepID string) (*MissionResult, error) {
	fx := &effects{}
	var res *MissionResult
	err := s.mutate(ctx, func() error {
		if err := s.checkActive(missionID); err != nil {
			return err
		}
		var err error
		res, err = s.applyStep(fx, stepID)
		return err
	})
	if err != nil {
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	return res, nil
}

func (s *Service) checkActive(missionID string) error {
	if s.profile.ActiveMission == nil {
		return ErrNoActiveMission
	}
	if s.profile.ActiveMission.ID != missionID {
		return ErrMissionMismatch
	}
	return nil
}

// applyStep runs advanceStep on the active mission and applies the outcome,
// completing the mission when the outcome says so. Callers must hold s.mu.
func (s *Service) applyStep(fx *effects, stepID string) (*MissionResult, error) {
	m, out, err := advanceStep(*s.profile.ActiveMission, stepID, s.clock())
	if err != nil {
		return nil, err
	}
	s.profile.ActiveMission = &m

	if out.StepCompleted {
		fx.add(Event{Kind: EventStepCompleted, RefID: out.StepID, Message: "Mission step completed"})
	} else {
		fx.add(Event{Kind: EventStepProgress, RefID: out.StepID,
			Message: fmt.Sprintf("Mission step progress %d/%d", out.Progress, out.Required)})
	}

	if !out.MissionCompleted {
		return &MissionResult{Mission: cloneMission(m), Step: &out}, nil
	}
	res := s.completeMission(fx)
	res.Step = &out
	return res, nil
}

// stepFor returns the in-progress step of the active mission if match
// accepts it.
func (s *Service) stepFor(match func(DungeonStep) bool) (string, bool) {
	m := s.profile.ActiveMission
	if m == nil || m.Status != MissionInProgress {
		return "", false
	}
	i := m.CurrentStep()
	if i < 0 || !match(m.Steps[i]) {
		return "", false
	}
	return m.Steps[i].ID, true
}

// CompleteDungeonMission finishes the active mission and pays out its rewards.
func (s *Service) CompleteDungeonMission(ctx context.Context, missionID string) (*MissionResult, error) {
	fx := &effects{}
	var res *MissionResult
	err := s.mutate(ctx, func() error {
		if err := s.checkActive(missionID); err != nil {
			return err
		}
		res = s.completeMission(fx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	return res, nil
}

// completeMission grants the mission XP, the monster's items not yet owned
// and its title, then moves the mission into history. Callers must hold
// s.mu and ensure a mission is active.
func (s *Service) completeMission(fx *effects) *MissionResult {
	now := s.clock()
	m := cloneMission(*s.profile.ActiveMission)
	m.Status = MissionCompleted
	if m.CompletedAt == nil {
		m.CompletedAt = ptrTime(now)
	}
	res := &MissionResult{Completed: true}

	g := s.grantXP(fx, m.XPReward, "")
	res.XP = &g

	if monster, ok := catalog.MonsterByID(m.MonsterID); ok {
		owned := s.profile.ownedSet()
		for _, id := range monster.Rewards {
			if owned[id] {
				continue
			}
			item, ok := catalog.ItemByID(id)
			if !ok {
				continue
			}
			owned[id] = true
			res.Items = append(res.Items, s.addItem(fx, item))
		}
		if t, ok := s.grantTitle(monster, now); ok {
			res.Title = &t
			fx.add(Event{Kind: EventTitleEarned, RefID: t.ID, Rank: t.Rank, Message: "Title earned: " + t.Name})
		}
	}

	s.profile.ActiveMission = nil
	s.profile.CompletedMissions = append(s.profile.CompletedMissions, m)
	s.notify(NotifyAchievement, "Mission Completed!", fmt.Sprintf("You've completed %s and earned %d XP!", m.Title, m.XPReward))
	fx.add(Event{Kind: EventMissionCompleted, RefID: m.ID, XP: m.XPReward, Message: "Mission completed: " + m.Title})
	s.log.Infow("mission completed", "id", m.ID, "monster", m.MonsterID, "items", len(res.Items))

	res.Mission = cloneMission(m)
	return res
}

// grantTitle mints the monster's title unless one with the same name exists.
func (s *Service) grantTitle(monster catalog.Monster, now time.Time) (Title, bool) {
	if monster.Title == "" {
		return Title{}, false
	}
	for _, t := range s.profile.Titles {
		if t.Name == monster.Title {
			return Title{}, false
		}
	}
	t := Title{
		ID:          "title-" + newID(),
		Name:        monster.Title,
		Description: "Earned by defeating " + monster.Name,
		Rank:        monster.Rank,
		UnlockedAt:  ptrTime(now),
	}
	s.profile.Titles = append(s.profile.Titles, t)
	return t, true
}

// FailDungeonMission moves the active mission into history as failed.
func (s *Service) FailDungeonMission(ctx context.Context, missionID string) (*MissionResult, error) {
	fx := &effects{}
	var res *MissionResult
	err := s.mutate(ctx, func() error {
		if err := s.checkActive(missionID); err != nil {
			return err
		}
		res = s.failMission(fx, "Mission abandoned")
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Events = fx.events
	s.record(ctx, fx.events)
	return res, nil
}

func (s *Service) failMission(fx *effects, reason string) *MissionResult {
	m := cloneMission(*s.profile.ActiveMission)
	m.Status = MissionFailed
	m.FailedAt = ptrTime(s.clock())
	s.profile.ActiveMission = nil
	s.profile.CompletedMissions = append(s.profile.CompletedMissions, m)
	s.notify(NotifyPenalty, "Mission Failed", fmt.Sprintf("%s: %s", reason, m.Title))
	fx.add(Event{Kind: EventMissionFailed, RefID: m.ID, Message: "Mission failed: " + m.Title})
	s.log.Infow("mission failed", "id", m.ID, "reason", reason)
	return &MissionResult{Mission: cloneMission(m), Failed: true}
}

func cloneMission(m DungeonMission) DungeonMission {
	m.Steps = slices.Clone(m.Steps)
	for i := range m.Steps {
		m.Steps[i].HabitIDs = slices.Clone(m.Steps[i].HabitIDs)
		m.Steps[i].QuestIDs = slices.Clone(m.Steps[i].QuestIDs)
	}
	return m
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}
