package user

import (
	"context"

	"photofeed/internal/core/user"
)

// UserRepository is the outbound port for storing and loading users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, user *user.User) (*user.User, error)
	Delete(ctx context.Context, id uint) error
}
