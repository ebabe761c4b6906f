package service

import (
	"context"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports"
)

type CategoryService struct {
	repo ports.CategoryRepo
}

func NewCategoryService(repo ports.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.ServiceCategory, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.ServiceCategory, error) {
	return s.repo.GetByID(ctx, id)
}
