package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/metrics"
	"github.com/stpnv0/rahi/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultTransactionLimit = 50

type WalletService struct {
	repo          ports.WalletRepo
	workerRepo    ports.WorkerRepo
	minWithdrawal decimal.Decimal
	loc           *time.Location
	logger        logger.Logger
	now           func() time.Time
}

func NewWalletService(
	repo ports.WalletRepo,
	workerRepo ports.WorkerRepo,
	minWithdrawal decimal.Decimal,
	loc *time.Location,
	logger logger.Logger,
) *WalletService {
	if loc == nil {
		loc = time.UTC
	}
	return &WalletService{
		repo:          repo,
		workerRepo:    workerRepo,
		minWithdrawal: minWithdrawal,
		loc:           loc,
		logger:        logger,
		now:           time.Now,
	}
}

// RecordEarning credits a completed job. At most one earning exists per
// booking; repeated calls return the stored entry.
func (s *WalletService) RecordEarning(ctx context.Context, workerID, bookingID string, amount decimal.Decimal) (*domain.WalletTransaction, bool, error) {
	if workerID == "" || bookingID == "" {
		return nil, false, fmt.Errorf("%w: worker and booking are required", domain.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, false, fmt.Errorf("%w: earning must be positive", domain.ErrValidation)
	}

	tx := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		WorkerID:    workerID,
		BookingID:   &bookingID,
		Amount:      amount.Round(2),
		Type:        domain.TransactionEarning,
		Status:      domain.TransactionCompleted,
		Description: "Job earning",
		CreatedAt:   s.now().UTC(),
	}

	stored, created, err := s.repo.Append(ctx, tx)
	metrics.WalletOperations.WithLabelValues(string(domain.TransactionEarning), metrics.Result(err)).Inc()
	if err != nil {
		return nil, false, fmt.Errorf("append earning: %w", err)
	}

	if created {
		s.logger.Info("earning recorded",
			logger.String("worker_id", workerID),
			logger.String("booking_id", bookingID),
			logger.String("amount", stored.Amount.StringFixed(2)),
		)
	} else {
		s.logger.Debug("earning already recorded",
			logger.String("booking_id", bookingID),
		)
	}

	return stored, created, nil
}

func (s *WalletService) Withdraw(ctx context.Context, workerID string, amount decimal.Decimal, upiID string) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("%w: minimum is ₹%s", domain.ErrBelowMinimum, s.minWithdrawal.StringFixed(0))
	}
	upiID = strings.TrimSpace(upiID)
	if !domain.ValidUpiID(upiID) {
		return nil, domain.ErrInvalidUpiID
	}

	tx := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		WorkerID:    workerID,
		Amount:      amount.Round(2).Neg(),
		Type:        domain.TransactionWithdrawal,
		Status:      domain.TransactionCompleted,
		UpiID:       &upiID,
		Description: "Withdrawal to " + upiID,
		CreatedAt:   s.now().UTC(),
	}

	err := s.repo.Withdraw(ctx, tx)
	metrics.WalletOperations.WithLabelValues(string(domain.TransactionWithdrawal), metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	s.logger.Info("withdrawal completed",
		logger.String("worker_id", workerID),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("upi_id", upiID),
	)

	return tx, nil
}

func (s *WalletService) RecordBonus(ctx context.Context, workerID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: bonus must be positive", domain.ErrValidation)
	}
	if description == "" {
		description = "Bonus"
	}

	tx := &domain.WalletTransaction{
		ID:          uuid.New().String(),
		WorkerID:    workerID,
		Amount:      amount.Round(2),
		Type:        domain.TransactionBonus,
		Status:      domain.TransactionCompleted,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}

	stored, _, err := s.repo.Append(ctx, tx)
	metrics.WalletOperations.WithLabelValues(string(domain.TransactionBonus), metrics.Result(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("append bonus: %w", err)
	}

	return stored, nil
}

func (s *WalletService) Balance(ctx context.Context, workerID string) (decimal.Decimal, error) {
	if _, err := s.workerRepo.GetByUserID(ctx, workerID); err != nil {
		return decimal.Zero, fmt.Errorf("get worker: %w", err)
	}
	return s.repo.Balance(ctx, workerID)
}

func (s *WalletService) Transactions(ctx context.Context, workerID string, limit int) ([]*domain.WalletTransaction, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultTransactionLimit
	}
	return s.repo.ListByWorker(ctx, workerID, limit)
}

// Summary reports the ledger balance with earnings since local midnight and over the last seven days.
func (s *WalletService) Summary(ctx context.Context, workerID string) (*domain.EarningsSummary, error) {
	balance, err := s.Balance(ctx, workerID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	weekStart := midnight.AddDate(0, 0, -6)

	txs, err := s.repo.ListSince(ctx, workerID, weekStart.UTC())
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}

	summary := &domain.EarningsSummary{Balance: balance, Today: decimal.Zero, Week: decimal.Zero}
	for _, t := range txs {
		if t.Type != domain.TransactionEarning || t.Status != domain.TransactionCompleted {
			continue
		}
		summary.Week = summary.Week.Add(t.Amount)
		if !t.CreatedAt.Before(midnight) {
			summary.Today = summary.Today.Add(t.Amount)
		}
	}

	return summary, nil
}

func (s *WalletService) Reconcile(ctx context.Context, workerID string) (*domain.Reconciliation, error) {
	cached, actual, err := s.repo.Reconcile(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	r := &domain.Reconciliation{
		WorkerID: workerID,
		Cached:   cached,
		Actual:   actual,
		Drift:    cached.Sub(actual),
	}
	if !r.Drift.IsZero() {
		s.logger.Warn("wallet balance drift corrected",
			logger.String("worker_id", workerID),
			logger.String("cached", cached.StringFixed(2)),
			logger.String("actual", actual.StringFixed(2)),
		)
	}

	return r, nil
}
