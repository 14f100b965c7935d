package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type ListRepositoryImpl struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) repositories.ListRepository {
	return &ListRepositoryImpl{db: db}
}

func (r *ListRepositoryImpl) Create(ctx context.Context, list *models.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *ListRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*models.List, error) {
	var lists []*models.List
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&lists).Error
	return lists, err
}

func (r *ListRepositoryImpl) GetByUserIDAndName(ctx context.Context, userID uint, name string) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepositoryImpl) SetIsDone(ctx context.Context, id uint, isDone bool) error {
	// RowsAffected == 0 is a no-op, not an error.
	return r.db.WithContext(ctx).Model(&models.List{}).Where("id = ?", id).Update("is_done", isDone).Error
}

// Delete removes the list and detaches its tasks in one transaction.
// Tasks survive with list_id NULL; relying on a database-level SET NULL
// constraint would leave the invariant at the mercy of the backing
// store, so it is enforced here.
func (r *ListRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("list_id = ?", id).Update("list_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.List{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ListRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.List{}).Count(&count).Error
	return count, err
}
