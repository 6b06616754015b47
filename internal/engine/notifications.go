package engine

import (
	"context"
	"slices"
)

// notify prepends a notification. Callers must hold s.mu.
func (s *Service) notify(kind NotificationType, title, message string) Notification {
	n := Notification{
		ID:        newID(),
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: s.clock(),
	}
	s.notifications = slices.Insert(s.notifications, 0, n)
	return n
}

// Notifications returns all notifications, newest first.
func (s *Service) Notifications() ([]Notification, error) {
	var out []Notification
	err := s.view(func() { out = slices.Clone(s.notifications) })
	return out, err
}

// UnreadCount returns the number of unread notifications.
func (s *Service) UnreadCount() (int, error) {
	n := 0
	err := s.view(func() {
		for _, x := range s.notifications {
			if !x.Read {
				n++
			}
		}
	})
	return n, err
}

// MarkNotificationRead flags a notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		for i := range s.notifications {
			if s.notifications[i].ID == id {
				s.notifications[i].Read = true
				return nil
			}
		}
		return ErrNotificationNotFound
	})
}

// MarkAllNotificationsRead flags every notification as read.
func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	return s.mutate(ctx, func() error {
		for i := range s.notifications {
			s.notifications[i].Read = true
		}
		return nil
	})
}

// DismissNotification removes a notification.
func (s *Service) DismissNotification(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		i := slices.IndexFunc(s.notifications, func(n Notification) bool { return n.ID == id })
		if i < 0 {
			return ErrNotificationNotFound
		}
		s.notifications = slices.Delete(s.notifications, i, i+1)
		return nil
	})
}
