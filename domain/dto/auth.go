package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type DeleteAccountRequest struct {
	AccessID string `json:"access_id" validate:"required"`
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	AccessID string `json:"access_id"`
}

type DeleteAccountResponse struct {
	Deleted bool `json:"deleted"`
}
