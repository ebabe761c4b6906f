package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const profileColumns = `id, user_id, status, wallet_balance, total_jobs, total_earnings, rating, bio, created_at, updated_at`

type WorkerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWorkerRepo(db *dbpg.DB) *WorkerRepository {
	return &WorkerRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanProfile(row scanner) (*domain.WorkerProfile, error) {
	var p domain.WorkerProfile
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Status, &p.WalletBalance, &p.TotalJobs,
		&p.TotalEarnings, &p.Rating, &p.Bio, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *WorkerRepository) Create(ctx context.Context, p *domain.WorkerProfile) error {
	query := `INSERT INTO worker_profiles (` + profileColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, p.ID, p.UserID, p.Status, p.WalletBalance, p.TotalJobs,
		p.TotalEarnings, p.Rating, p.Bio, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrProfileExists
		case codeForeignKeyViolation, codeInvalidTextValue:
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert worker profile: %w", err)
	}

	return nil
}

func (r *WorkerRepository) GetByUserID(ctx context.Context, userID string) (*domain.WorkerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM worker_profiles WHERE user_id::text = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get worker profile: %w", err)
	}

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("scan worker profile: %w", err)
	}
	return p, nil
}

func (r *WorkerRepository) SetStatus(ctx context.Context, userID string, status domain.WorkerStatus) (*domain.WorkerProfile, error) {
	query := `UPDATE worker_profiles SET status = $2, updated_at = now()
              WHERE user_id::text = $1
              RETURNING ` + profileColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("set worker status: %w", err)
	}

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("scan worker profile: %w", err)
	}
	return p, nil
}

// ListOnline returns online workers, longest online first. A non-positive limit returns all.
func (r *WorkerRepository) ListOnline(ctx context.Context, limit int) ([]*domain.WorkerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM worker_profiles
              WHERE status = $1
              ORDER BY updated_at`
	args := []any{domain.WorkerStatusOnline}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list online workers: %w", err)
	}
	defer rows.Close()

	var res []*domain.WorkerProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker profile: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
