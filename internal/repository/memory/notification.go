package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/rahi/internal/domain"
)

type NotificationRepo struct {
	s *Store
}

func (r *NotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.notifications[n.UserID] = append(r.s.notifications[n.UserID], clonePtr(n))
	return nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := r.s.notifications[userID]
	res := make([]*domain.Notification, 0, len(items))
	for _, n := range items {
		res = append(res, clonePtr(n))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ID > res[j].ID
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *NotificationRepo) CountUnread(_ context.Context, userID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, item := range r.s.notifications[userID] {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, n := range r.s.notifications[userID] {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	changed := 0
	for _, n := range r.s.notifications[userID] {
		if !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

func (r *NotificationRepo) Clear(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.notifications, userID)
	return nil
}
