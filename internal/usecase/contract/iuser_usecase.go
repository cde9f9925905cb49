package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
