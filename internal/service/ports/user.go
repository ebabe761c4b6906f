package ports

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type WorkerRepo interface {
	Create(ctx context.Context, p *domain.WorkerProfile) error
	GetByUserID(ctx context.Context, userID string) (*domain.WorkerProfile, error)
	SetStatus(ctx context.Context, userID string, status domain.WorkerStatus) (*domain.WorkerProfile, error)
	ListOnline(ctx context.Context, limit int) ([]*domain.WorkerProfile, error)
}
