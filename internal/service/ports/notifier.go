package ports

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
	Clear(ctx context.Context, userID string) error
}

// NotificationPusher delivers a stored notification to a live channel. Delivery is best effort.
type NotificationPusher interface {
	Push(ctx context.Context, user *domain.User, n *domain.Notification)
}
