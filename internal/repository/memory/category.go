package memory

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
)

type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) List(_ context.Context) ([]*domain.ServiceCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ServiceCategory, 0, len(r.s.categoryOrder))
	for _, id := range r.s.categoryOrder {
		res = append(res, clonePtr(r.s.categories[id]))
	}
	return res, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*domain.ServiceCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return clonePtr(c), nil
}
