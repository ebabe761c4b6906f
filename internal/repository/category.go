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

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.ServiceCategory, error) {
	query := `SELECT id, name_en, name_hi, icon, default_price
			  FROM service_categories
			  ORDER BY name_en`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.ServiceCategory
	for rows.Next() {
		var c domain.ServiceCategory
		if err = rows.Scan(&c.ID, &c.NameEn, &c.NameHi, &c.Icon, &c.DefaultPrice); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.ServiceCategory, error) {
	query := `SELECT id, name_en, name_hi, icon, default_price
			  FROM service_categories
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.ServiceCategory
	if err = row.Scan(&c.ID, &c.NameEn, &c.NameHi, &c.Icon, &c.DefaultPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}
