package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	phone := normalizePhone(input.Phone)
	if len(phone) < 10 {
		return nil, fmt.Errorf("%w: phone must have at least 10 digits", domain.ErrValidation)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	lang := input.Language
	if lang != domain.LanguageHindi {
		lang = domain.LanguageEnglish
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		FullName:       strings.TrimSpace(input.FullName),
		Phone:          phone,
		Role:           role,
		Language:       lang,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return s.repo.GetByPhone(ctx, normalizePhone(phone))
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// normalizePhone keeps digits and a leading plus sign.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
