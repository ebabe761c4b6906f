package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const transactionColumns = `id, worker_id, booking_id, amount, transaction_type, status, upi_id, description, created_at`

type WalletRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWalletRepo(db *dbpg.DB) *WalletRepository {
	return &WalletRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanTransaction(row scanner) (*domain.WalletTransaction, error) {
	var t domain.WalletTransaction
	if err := row.Scan(
		&t.ID, &t.WorkerID, &t.BookingID, &t.Amount, &t.Type,
		&t.Status, &t.UpiID, &t.Description, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func lockProfile(ctx context.Context, tx *sql.Tx, workerID string) error {
	var id string
	query := `SELECT id FROM worker_profiles WHERE user_id::text = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, workerID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrWorkerNotFound
		}
		return fmt.Errorf("lock worker profile: %w", err)
	}
	return nil
}

func (r *WalletRepository) Append(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockProfile(ctx, tx, t.WorkerID); err != nil {
		return nil, false, err
	}

	// Второе начисление за ту же бронь отсекается частичным уникальным индексом
	query := `INSERT INTO wallet_transactions (` + transactionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              ON CONFLICT (booking_id) WHERE transaction_type = 'earning' DO NOTHING
              RETURNING ` + transactionColumns
	stored, err := scanTransaction(tx.QueryRowContext(
		ctx, query, t.ID, t.WorkerID, t.BookingID, t.Amount, t.Type,
		t.Status, t.UpiID, t.Description, t.CreatedAt,
	))
	if errors.Is(err, sql.ErrNoRows) {
		existing, gerr := scanTransaction(tx.QueryRowContext(ctx,
			`SELECT `+transactionColumns+` FROM wallet_transactions
             WHERE booking_id = $1 AND transaction_type = 'earning'`, t.BookingID))
		if gerr != nil {
			return nil, false, fmt.Errorf("get existing earning: %w", gerr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insert transaction: %w", err)
	}

	if t.Status == domain.TransactionCompleted {
		update := `UPDATE worker_profiles
                   SET wallet_balance = wallet_balance + $2,
                       total_jobs = total_jobs + CASE WHEN $3 THEN 1 ELSE 0 END,
                       total_earnings = total_earnings + CASE WHEN $3 THEN $2 ELSE 0 END,
                       updated_at = $4
                   WHERE user_id::text = $1`
		isEarning := t.Type == domain.TransactionEarning
		if _, err = tx.ExecContext(ctx, update, t.WorkerID, t.Amount, isEarning, t.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("update cached balance: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit transaction: %w", err)
	}
	return stored, true, nil
}

func (r *WalletRepository) Withdraw(ctx context.Context, t *domain.WalletTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockProfile(ctx, tx, t.WorkerID); err != nil {
		return err
	}

	var balance decimal.Decimal
	if err = tx.QueryRowContext(ctx, balanceQuery, t.WorkerID).Scan(&balance); err != nil {
		return fmt.Errorf("ledger balance: %w", err)
	}
	if balance.Add(t.Amount).IsNegative() {
		return domain.ErrInsufficientBalance
	}

	insert := `INSERT INTO wallet_transactions (` + transactionColumns + `)
               VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, insert, t.ID, t.WorkerID, t.BookingID, t.Amount, t.Type,
		t.Status, t.UpiID, t.Description, t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}

	update := `UPDATE worker_profiles SET wallet_balance = $2, updated_at = $3 WHERE user_id::text = $1`
	if _, err = tx.ExecContext(ctx, update, t.WorkerID, balance.Add(t.Amount), t.CreatedAt); err != nil {
		return fmt.Errorf("update cached balance: %w", err)
	}

	return tx.Commit()
}

func (r *WalletRepository) ListByWorker(ctx context.Context, workerID string, limit int) ([]*domain.WalletTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM wallet_transactions
              WHERE worker_id::text = $1
              ORDER BY created_at DESC`
	args := []any{workerID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

func (r *WalletRepository) ListSince(ctx context.Context, workerID string, since time.Time) ([]*domain.WalletTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM wallet_transactions
              WHERE worker_id::text = $1 AND created_at >= $2
              ORDER BY created_at DESC`
	return r.list(ctx, query, workerID, since)
}

func (r *WalletRepository) list(ctx context.Context, query string, args ...any) ([]*domain.WalletTransaction, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var res []*domain.WalletTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

const balanceQuery = `SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions
                      WHERE worker_id::text = $1 AND status = 'completed'`

func (r *WalletRepository) Balance(ctx context.Context, workerID string) (decimal.Decimal, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, balanceQuery, workerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger balance: %w", err)
	}

	var balance decimal.Decimal
	if err = row.Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("scan balance: %w", err)
	}
	return balance, nil
}

func (r *WalletRepository) Reconcile(ctx context.Context, workerID string) (decimal.Decimal, decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var cached decimal.Decimal
	lock := `SELECT wallet_balance FROM worker_profiles WHERE user_id::text = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lock, workerID).Scan(&cached); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, decimal.Zero, domain.ErrWorkerNotFound
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("lock worker profile: %w", err)
	}

	var actual decimal.Decimal
	if err = tx.QueryRowContext(ctx, balanceQuery, workerID).Scan(&actual); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("ledger balance: %w", err)
	}

	update := `UPDATE worker_profiles SET wallet_balance = $2, updated_at = now() WHERE user_id::text = $1`
	if _, err = tx.ExecContext(ctx, update, workerID, actual); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("store reconciled balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("commit reconcile: %w", err)
	}
	return cached, actual, nil
}
