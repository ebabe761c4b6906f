package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
)

type WalletRepo interface {
	// Append stores tx and bumps the cached profile balance. An earning for a
	// booking that already has one is not stored again; the existing entry is
	// returned with created=false.
	Append(ctx context.Context, tx *domain.WalletTransaction) (stored *domain.WalletTransaction, created bool, err error)
	// Withdraw checks the ledger balance under a lock on the worker profile and
	// appends tx (negative amount) only when it is covered.
	Withdraw(ctx context.Context, tx *domain.WalletTransaction) error
	ListByWorker(ctx context.Context, workerID string, limit int) ([]*domain.WalletTransaction, error)
	ListSince(ctx context.Context, workerID string, since time.Time) ([]*domain.WalletTransaction, error)
	Balance(ctx context.Context, workerID string) (decimal.Decimal, error)
	// Reconcile overwrites the cached balance with the ledger sum and returns both values.
	Reconcile(ctx context.Context, workerID string) (cached, actual decimal.Decimal, err error)
}

type EarningLedger interface {
	// RecordEarning reports created=false when the booking was already credited.
	RecordEarning(ctx context.Context, workerID, bookingID string, amount decimal.Decimal) (tx *domain.WalletTransaction, created bool, err error)
}
