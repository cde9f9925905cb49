package mocks

import (
	"errors"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	"github.com/mikiasgoitom/Catalog/internal/usecase"
)

// MockJWTService accepts exactly one token value.
type MockJWTService struct {
	ValidToken string
	UserID     string
	Email      string
}

var _ usecase.JWTService = (*MockJWTService)(nil)

func NewMockJWTService() *MockJWTService {
	return &MockJWTService{ValidToken: "valid-token", UserID: "mock-user-id", Email: "test@example.com"}
}

func (m *MockJWTService) GenerateAccessToken(userID, email string) (string, error) {
	return m.ValidToken, nil
}

func (m *MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	if token != m.ValidToken {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: m.UserID, Email: m.Email}, nil
}
