package serviceimpl

import (
	"context"
	"time"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

// TaskServiceImpl accepts the caller's access token on every mutating
// call but never resolves it. That asymmetry with lists is inherited
// behavior (see DESIGN.md) and is kept on purpose.
type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.EventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.EventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

type taskEvent struct {
	ID     uint   `json:"id"`
	ListID *uint  `json:"list_id"`
	Name   string `json:"name"`
}

func (s *TaskServiceImpl) Create(ctx context.Context, accessToken string, listID *uint, name, description string, isDone bool) (*models.Task, error) {
	task := &models.Task{
		ListID:      listID,
		Name:        name,
		Description: description,
		IsDone:      isDone,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)
	s.publish(ctx, ports.SubjectTaskCreated, taskEvent{ID: task.ID, ListID: task.ListID, Name: task.Name})

	return task, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, accessToken string, sel services.TaskSelector) ([]*models.Task, error) {
	switch sel.Kind {
	case services.TaskSelectorByList:
		return s.taskRepo.GetByListID(ctx, sel.ListID)
	default:
		task, err := s.taskRepo.GetByID(ctx, sel.ID)
		if err != nil {
			return nil, err
		}
		if task == nil {
			return []*models.Task{}, nil
		}
		return []*models.Task{task}, nil
	}
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, services.ErrNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateIsDone(ctx context.Context, accessToken string, id uint, isDone bool) error {
	return s.taskRepo.SetIsDone(ctx, id, isDone)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, accessToken string, id uint) (bool, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return false, err
	}

	if deleted {
		logger.InfoContext(ctx, "Task deleted", "task_id", id)
		s.publish(ctx, ports.SubjectTaskDeleted, taskEvent{ID: task.ID, ListID: task.ListID, Name: task.Name})
	}

	return deleted, nil
}

func (s *TaskServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, subject, payload)
}
