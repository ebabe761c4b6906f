package ports

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	// Transition returns domain.ErrTransitionConflict when the stored booking no
	// longer satisfies t.From or the worker constraint.
	Transition(ctx context.Context, t domain.Transition) (*domain.Booking, error)
	History(ctx context.Context, bookingID string) ([]*domain.HistoryEntry, error)
	CountActiveByWorker(ctx context.Context, workerID string) (int, error)
}

type OTPAttemptLimiter interface {
	Allow(ctx context.Context, bookingID string) error
	Fail(ctx context.Context, bookingID string) error
	Reset(ctx context.Context, bookingID string) error
}
