package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type WorkerService struct {
	repo        ports.WorkerRepo
	userRepo    ports.UserRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewWorkerService(
	repo ports.WorkerRepo,
	userRepo ports.UserRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *WorkerService {
	return &WorkerService{
		repo:        repo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *WorkerService) CreateProfile(ctx context.Context, userID, bio string) (*domain.WorkerProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !user.Role.CanWork() {
		return nil, fmt.Errorf("%w: role %s cannot hold a worker profile", domain.ErrForbidden, user.Role)
	}

	now := time.Now().UTC()
	p := &domain.WorkerProfile{
		ID:            uuid.New().String(),
		UserID:        userID,
		Status:        domain.WorkerStatusOffline,
		WalletBalance: decimal.Zero,
		TotalEarnings: decimal.Zero,
		Bio:           bio,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("worker profile created",
		logger.String("user_id", userID),
		logger.String("profile_id", p.ID),
	)

	return p, nil
}

func (s *WorkerService) GetProfile(ctx context.Context, userID string) (*domain.WorkerView, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return s.view(ctx, p)
}

// SetStatus toggles availability. Busy is derived from active jobs and cannot be set.
func (s *WorkerService) SetStatus(ctx context.Context, userID, status string) (*domain.WorkerView, error) {
	st, err := domain.ParseWorkerStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: status must be online or offline", err)
	}

	p, err := s.repo.SetStatus(ctx, userID, st)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("worker status changed",
		logger.String("user_id", userID),
		logger.String("status", string(st)),
	)

	return s.view(ctx, p)
}

func (s *WorkerService) view(ctx context.Context, p *domain.WorkerProfile) (*domain.WorkerView, error) {
	active, err := s.bookingRepo.CountActiveByWorker(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("count active jobs: %w", err)
	}
	return &domain.WorkerView{Profile: p, ActiveJobs: active}, nil
}
