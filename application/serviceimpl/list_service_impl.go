package serviceimpl

import (
	"context"
	"errors"
	"time"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type ListServiceImpl struct {
	listRepo repositories.ListRepository
	users    services.UserService
	events   ports.EventPublisher
}

func NewListService(listRepo repositories.ListRepository, users services.UserService, events ports.EventPublisher) services.ListService {
	return &ListServiceImpl{
		listRepo: listRepo,
		users:    users,
		events:   events,
	}
}

type listEvent struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

func (s *ListServiceImpl) Create(ctx context.Context, accessToken, name, description string, isDone bool) ([]*models.List, error) {
	owner, err := s.users.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	list := &models.List{
		UserID:      owner.ID,
		Name:        name,
		Description: description,
		IsDone:      isDone,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		logger.ErrorContext(ctx, "Failed to create list", "user_id", owner.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "List created", "list_id", list.ID, "user_id", owner.ID)
	s.publish(ctx, ports.SubjectListCreated, listEvent{ID: list.ID, UserID: list.UserID, Name: list.Name})

	// One-element slice, same shape Get returns.
	return []*models.List{list}, nil
}

func (s *ListServiceImpl) Get(ctx context.Context, accessToken string, sel services.ListSelector) ([]*models.List, error) {
	owner, err := s.users.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	switch sel.Kind {
	case services.ListSelectorByID:
		// Ownership is deliberately not re-checked on the id path.
		list, err := s.listRepo.GetByID(ctx, sel.ID)
		if err != nil {
			return nil, err
		}
		if list == nil {
			return []*models.List{}, nil
		}
		return []*models.List{list}, nil
	case services.ListSelectorAll:
		return s.listRepo.GetByUserID(ctx, owner.ID)
	default:
		return nil, errors.New("list name is not a valid read selector")
	}
}

func (s *ListServiceImpl) Delete(ctx context.Context, accessToken string, sel services.ListSelector) (bool, error) {
	owner, err := s.users.Resolve(ctx, accessToken)
	if err != nil {
		return false, err
	}

	var target *models.List
	switch sel.Kind {
	case services.ListSelectorByID:
		// Same unscoped id path as Get.
		target, err = s.listRepo.GetByID(ctx, sel.ID)
	case services.ListSelectorByName:
		target, err = s.listRepo.GetByUserIDAndName(ctx, owner.ID, sel.Name)
	default:
		return false, errors.New("delete needs an id or name selector")
	}
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, nil
	}

	deleted, err := s.listRepo.Delete(ctx, target.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete list", "list_id", target.ID, "error", err)
		return false, err
	}

	if deleted {
		logger.InfoContext(ctx, "List deleted", "list_id", target.ID, "user_id", owner.ID)
		s.publish(ctx, ports.SubjectListDeleted, listEvent{ID: target.ID, UserID: target.UserID, Name: target.Name})
	}

	return deleted, nil
}

func (s *ListServiceImpl) UpdateIsDone(ctx context.Context, accessToken string, id uint, isDone bool) error {
	// Matches the historical contract: no credential check on this path
	// and a silent no-op when the id matches nothing.
	return s.listRepo.SetIsDone(ctx, id, isDone)
}

func (s *ListServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, subject, payload)
}
