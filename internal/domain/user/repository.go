package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, id int64, name *string, passwordHash *string) (User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}
