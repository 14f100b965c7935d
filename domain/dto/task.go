package dto

type CreateTaskRequest struct {
	ListID      *uint  `json:"list_id"` // nil creates an unattached task
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	IsDone      bool   `json:"is_done"`
}

type UpdateTaskRequest struct {
	IsDone bool `json:"is_done"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	ListID      *uint  `json:"list_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}
