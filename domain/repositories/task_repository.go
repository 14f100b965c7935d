package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// TaskRepository persists tasks. Lookups return (nil, nil) on a miss.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	GetByListID(ctx context.Context, listID uint) ([]*models.Task, error)
	SetIsDone(ctx context.Context, id uint, isDone bool) error
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}
