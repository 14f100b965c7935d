package dto

type CreateListRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	IsDone      bool   `json:"is_done"`
}

type UpdateListRequest struct {
	IsDone bool `json:"is_done"`
}

type ListResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDone      bool   `json:"is_done"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
