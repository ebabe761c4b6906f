package ports

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, e domain.BookingEvent) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]*domain.ServiceCategory, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceCategory, error)
}
