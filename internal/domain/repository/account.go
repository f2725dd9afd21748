package repository

import (
	"context"

	"github.com/polkiloo/gymkeeper/internal/domain/model"
)

// UserRepository stores gym owner credentials keyed by login.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AdminRepository persists gym owner profiles, at most one per user.
// Profiles cannot be deleted.
type AdminRepository interface {
	Create(ctx context.Context, admin model.Admin) (*model.Admin, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Admin, error)
	Update(ctx context.Context, admin model.Admin) (*model.Admin, error)
}
