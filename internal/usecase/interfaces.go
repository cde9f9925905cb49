package usecase

import (
	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID, email string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
