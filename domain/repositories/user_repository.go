package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// UserRepository persists users. Lookups return (nil, nil) on a miss;
// a non-nil error always means the store itself failed.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	GetByAccessID(ctx context.Context, accessID string) (*models.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
