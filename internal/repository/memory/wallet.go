package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
)

type WalletRepo struct {
	s *Store
}

func (r *WalletRepo) Append(_ context.Context, tx *domain.WalletTransaction) (*domain.WalletTransaction, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.workers[tx.WorkerID]
	if !ok {
		return nil, false, domain.ErrWorkerNotFound
	}

	if tx.Type == domain.TransactionEarning && tx.BookingID != nil {
		if existing, ok := r.s.earnings[*tx.BookingID]; ok {
			return clonePtr(existing), false, nil
		}
	}

	stored := clonePtr(tx)
	r.s.transactions = append(r.s.transactions, stored)
	if tx.Type == domain.TransactionEarning && tx.BookingID != nil {
		r.s.earnings[*tx.BookingID] = stored
	}

	if tx.Status == domain.TransactionCompleted {
		p.WalletBalance = p.WalletBalance.Add(tx.Amount)
		if tx.Type == domain.TransactionEarning {
			p.TotalJobs++
			p.TotalEarnings = p.TotalEarnings.Add(tx.Amount)
		}
		p.UpdatedAt = tx.CreatedAt
	}

	return clonePtr(stored), true, nil
}

func (r *WalletRepo) Withdraw(_ context.Context, tx *domain.WalletTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.workers[tx.WorkerID]
	if !ok {
		return domain.ErrWorkerNotFound
	}

	balance := r.s.balanceLocked(tx.WorkerID)
	if balance.Add(tx.Amount).IsNegative() {
		return domain.ErrInsufficientBalance
	}

	r.s.transactions = append(r.s.transactions, clonePtr(tx))
	p.WalletBalance = balance.Add(tx.Amount)
	p.UpdatedAt = tx.CreatedAt
	return nil
}

func (r *WalletRepo) ListByWorker(_ context.Context, workerID string, limit int) ([]*domain.WalletTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := r.s.transactionsLocked(workerID, time.Time{})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *WalletRepo) ListSince(_ context.Context, workerID string, since time.Time) ([]*domain.WalletTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.transactionsLocked(workerID, since), nil
}

func (r *WalletRepo) Balance(_ context.Context, workerID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.balanceLocked(workerID), nil
}

func (r *WalletRepo) Reconcile(_ context.Context, workerID string) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.workers[workerID]
	if !ok {
		return decimal.Zero, decimal.Zero, domain.ErrWorkerNotFound
	}
	cached := p.WalletBalance
	actual := r.s.balanceLocked(workerID)
	p.WalletBalance = actual
	return cached, actual, nil
}

func (s *Store) balanceLocked(workerID string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range s.transactions {
		if t.WorkerID == workerID && t.Status == domain.TransactionCompleted {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// transactionsLocked returns the worker's entries newest first.
func (s *Store) transactionsLocked(workerID string, since time.Time) []*domain.WalletTransaction {
	var res []*domain.WalletTransaction
	for _, t := range s.transactions {
		if t.WorkerID == workerID && !t.CreatedAt.Before(since) {
			res = append(res, clonePtr(t))
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res
}
