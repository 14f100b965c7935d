package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// ListRepository persists lists. Lookups return (nil, nil) on a miss.
// Delete detaches the list's tasks (list_id set to NULL) in the same
// transaction; it never deletes them.
type ListRepository interface {
	Create(ctx context.Context, list *models.List) error
	GetByID(ctx context.Context, id uint) (*models.List, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.List, error)
	GetByUserIDAndName(ctx context.Context, userID uint, name string) (*models.List, error)
	SetIsDone(ctx context.Context, id uint, isDone bool) error
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
