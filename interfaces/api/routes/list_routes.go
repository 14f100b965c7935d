package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
)

func SetupListRoutes(api fiber.Router, h *handlers.Handlers) {
	lists := api.Group("/lists")
	lists.Post("/", h.ListHandler.CreateList)
	lists.Get("/", h.ListHandler.GetLists)
	lists.Delete("/", h.ListHandler.DeleteList)
	lists.Patch("/:id", h.ListHandler.UpdateList)
}
