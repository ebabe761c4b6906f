package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, user_id, type, title, message, booking_id, data, read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var data any
	if len(n.Data) > 0 {
		data = []byte(n.Data)
	}
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, n.ID, n.UserID, n.Type, n.Title,
		n.Message, n.BookingID, data, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	query := `SELECT id, user_id, type, title, message, booking_id, data, read, created_at
              FROM notifications
              WHERE user_id::text = $1
              ORDER BY id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var (
			n    domain.Notification
			data []byte
		)
		if err = rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.BookingID, &data, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Data = data
		res = append(res, &n)
	}

	return res, rows.Err()
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id::text = $1 AND NOT read`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan unread: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id::text = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notification rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	query := `UPDATE notifications SET read = TRUE WHERE user_id::text = $1 AND NOT read`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("notification rows affected: %w", err)
	}
	return int(rows), nil
}

func (r *NotificationRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM notifications WHERE user_id::text = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
