package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// ErrorHandler is the last line of defense for errors handlers did not
// map themselves.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		switch {
		case errors.Is(err, services.ErrMissingCredential):
			return utils.MissingCredentialResponse(c)
		case errors.Is(err, services.ErrNotAuthorized):
			return utils.UnauthorizedResponse(c, "")
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, "")
		}

		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
