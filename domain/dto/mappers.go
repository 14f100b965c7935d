package dto

import (
	"todo-backend/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		AccessID: user.AccessID,
	}
}

func ListToListResponse(list *models.List) *ListResponse {
	if list == nil {
		return nil
	}
	return &ListResponse{
		ID:          list.ID,
		UserID:      list.UserID,
		Name:        list.Name,
		Description: list.Description,
		IsDone:      list.IsDone,
	}
}

// FormatLists shapes rows into response records, preserving input order.
// Empty input yields an empty (non-nil) slice.
func FormatLists(lists []*models.List) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i, list := range lists {
		out[i] = *ListToListResponse(list)
	}
	return out
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		ListID:      task.ListID,
		Name:        task.Name,
		Description: task.Description,
		IsDone:      task.IsDone,
	}
}

// FormatTasks shapes rows into response records, preserving input order.
func FormatTasks(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		out[i] = *TaskToTaskResponse(task)
	}
	return out
}
