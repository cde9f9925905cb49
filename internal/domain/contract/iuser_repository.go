package contract

import (
	"context"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser returns domain.ErrEmailTaken if the email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail returns domain.ErrUserNotFound when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
