package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/rahi/internal/domain"
)

type WorkerRepo struct {
	s *Store
}

func (r *WorkerRepo) Create(_ context.Context, p *domain.WorkerProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[p.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := r.s.workers[p.UserID]; ok {
		return domain.ErrProfileExists
	}
	r.s.workers[p.UserID] = clonePtr(p)
	return nil
}

func (r *WorkerRepo) GetByUserID(_ context.Context, userID string) (*domain.WorkerProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.workers[userID]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	return clonePtr(p), nil
}

func (r *WorkerRepo) SetStatus(_ context.Context, userID string, status domain.WorkerStatus) (*domain.WorkerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.workers[userID]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	return clonePtr(p), nil
}

func (r *WorkerRepo) ListOnline(_ context.Context, limit int) ([]*domain.WorkerProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.WorkerProfile
	for _, p := range r.s.workers {
		if p.Status == domain.WorkerStatusOnline {
			res = append(res, clonePtr(p))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].UpdatedAt.Before(res[j].UpdatedAt)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
