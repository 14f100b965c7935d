package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/services"
	"todo-backend/pkg/utils"
)

// Services contains everything the handlers need.
type Services struct {
	UserService services.UserService
	ListService services.ListService
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler *AuthHandler
	ListHandler *ListHandler
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.UserService),
		ListHandler: NewListHandler(services.ListService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}

// accessToken pulls the bearer token from the Authorization header.
// Empty means absent; the services decide what that means.
func accessToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// serviceErrorResponse maps the service error taxonomy onto the
// response envelope.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingCredential):
		return utils.MissingCredentialResponse(c)
	case errors.Is(err, services.ErrNotAuthorized):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
