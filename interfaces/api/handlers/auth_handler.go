package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(ctx, req.Username, req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		// Misses come back as 401, not 404: login must not reveal which
		// half of the credential pair was wrong.
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	deleted, err := h.userService.Deauthenticate(ctx, req.AccessID, req.Username, req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Account deletion failed", "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteAccountResponse{Deleted: deleted})
}
