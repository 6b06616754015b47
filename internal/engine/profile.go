package engine

import (
	"context"
	"maps"
	"slices"

	"hunterlog/internal/catalog"
	"hunterlog/internal/storage"
)

// Profile returns a copy of the user profile.
func (s *Service) Profile() (UserProfile, error) {
	var out UserProfile
	err := s.view(func() { out = cloneProfile(s.profile) })
	return out, err
}

// Stats returns a copy of the current stats.
func (s *Service) Stats() (Stats, error) {
	var out Stats
	err := s.view(func() { out = cloneStats(s.profile.Stats) })
	return out, err
}

// IsNewUser reports whether the profile has not been initialized yet.
func (s *Service) IsNewUser() (bool, error) {
	var out bool
	err := s.view(func() { out = s.newUser })
	return out, err
}

// InitializeUserProfile starts a fresh profile with the starter inventory
// and the achievement ladder, and clears the first-run flag.
func (s *Service) InitializeUserProfile(ctx context.Context, username string) (UserProfile, error) {
	name, err := normalizeTitle(username)
	if err != nil {
		return UserProfile{}, err
	}
	var out UserProfile
	err = s.mutate(ctx, func() error {
		now := s.clock()
		p := defaultProfile(now)
		p.Username = name
		p.Achievements = seedAchievements()
		for _, it := range catalog.StarterItems() {
			it.UnlockedAt = ptrTime(now)
			p.Inventory = append(p.Inventory, it)
		}
		s.profile = p
		s.newUser = false
		s.notify(NotifyTip, "Welcome, Hunter", "Complete habits to earn XP, level up and climb the hunter ranks.")
		out = cloneProfile(p)
		return nil
	})
	if err != nil {
		return UserProfile{}, err
	}
	s.log.Infow("profile initialized", "username", name)
	return out, nil
}

type ProfileUpdate struct {
	Username *string
	Avatar   *string
}

// UpdateUserProfile changes the username and avatar.
func (s *Service) UpdateUserProfile(ctx context.Context, in ProfileUpdate) (UserProfile, error) {
	var name string
	if in.Username != nil {
		n, err := normalizeTitle(*in.Username)
		if err != nil {
			return UserProfile{}, err
		}
		name = n
	}
	var out UserProfile
	err := s.mutate(ctx, func() error {
		if in.Username != nil {
			s.profile.Username = name
		}
		if in.Avatar != nil {
			s.profile.Avatar = *in.Avatar
		}
		out = cloneProfile(s.profile)
		return nil
	})
	return out, err
}

// ResetAllData restores defaults and deletes every persisted slot.
func (s *Service) ResetAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.slots.Delete(ctx, storage.AllKeys...); err != nil {
		return err
	}
	if s.journal != nil {
		if err := s.journal.Clear(ctx); err != nil {
			return err
		}
	}
	s.defaults()
	s.log.Infow("all data reset")
	return nil
}

func cloneStats(st Stats) Stats {
	st.CategoriesProgress = maps.Clone(st.CategoriesProgress)
	return st
}

func cloneProfile(p UserProfile) UserProfile {
	p.Stats = cloneStats(p.Stats)
	p.Achievements = slices.Clone(p.Achievements)
	p.Inventory = slices.Clone(p.Inventory)
	p.EquippedItems = maps.Clone(p.EquippedItems)
	p.Titles = slices.Clone(p.Titles)
	if p.ActiveMission != nil {
		m := cloneMission(*p.ActiveMission)
		p.ActiveMission = &m
	}
	p.CompletedMissions = slices.Clone(p.CompletedMissions)
	return p
}
