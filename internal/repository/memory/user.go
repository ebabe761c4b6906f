package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/rahi/internal/domain"
)

type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.phones[user.Phone]; ok {
		return domain.ErrPhoneTaken
	}
	r.s.users[user.ID] = clonePtr(user)
	r.s.phones[user.Phone] = user.ID
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clonePtr(u), nil
}

func (r *UserRepo) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.phones[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clonePtr(r.s.users[id]), nil
}

func (r *UserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		res = append(res, clonePtr(u))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}
