package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Catalog/internal/domain"
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser  bool
	ShouldFailDuplicate   bool
	ShouldFailLogin       bool
	ShouldFailGetByID     bool
	ShouldFailListUsers   bool
	ShouldFailInvalidMail bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Email:     "test@example.com",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	switch {
	case m.ShouldFailDuplicate:
		return nil, domain.ErrEmailTaken
	case m.ShouldFailInvalidMail:
		return nil, domain.ErrInvalidInput
	case m.ShouldFailCreateUser:
		return nil, errors.New("user creation failed")
	}
	u := m.MockUser
	u.Email = email
	return &u, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", domain.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, domain.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if m.ShouldFailListUsers {
		return nil, errors.New("database unavailable")
	}
	return []*entity.User{&m.MockUser}, nil
}
