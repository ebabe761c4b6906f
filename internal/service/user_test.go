package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stpnv0/rahi/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	input := domain.CreateUserInput{
		FullName:       "Ramesh Kumar",
		Phone:          "+91 98765-43210",
		Role:           domain.RoleWorker,
		Language:       domain.LanguageHindi,
		TelegramChatID: &chatID,
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", user.FullName)
	assert.Equal(t, "+919876543210", user.Phone)
	assert.Equal(t, domain.RoleWorker, user.Role)
	assert.Equal(t, domain.LanguageHindi, user.Language)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_Defaults(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{FullName: "Asha", Phone: "9876543210"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, domain.LanguageEnglish, user.Language)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(nil)

	cases := []domain.CreateUserInput{
		{FullName: "", Phone: "9876543210"},
		{FullName: "Asha", Phone: "12345"},
		{FullName: "Asha", Phone: "9876543210", Role: "superuser"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{FullName: "Asha", Phone: "9876543210"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_Create_PhoneTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPhoneTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{FullName: "Asha", Phone: "9876543210"})

	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
}

func TestUserService_GetByPhone_Normalizes(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByPhone(mock.Anything, "9876543210").Return(&domain.User{ID: "u1"}, nil)

	u, err := svc.GetByPhone(context.Background(), "98765 43210")

	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
