package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Create(ctx, token, req.ListID, req.Name, req.Description, req.IsDone)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// GetTasks keeps the historical selector contract: a non-zero list_id
// filters by list; anything else, including an explicit list_id=0,
// falls back to the id filter. There is no way to ask for "all tasks of
// list 0" through this endpoint.
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	listID, err := strconv.ParseUint(c.Query("list_id", "0"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid list id")
	}
	id, err := strconv.ParseUint(c.Query("id", "0"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id")
	}

	var sel services.TaskSelector
	if listID != 0 {
		sel = services.TasksByList(uint(listID))
	} else {
		sel = services.TaskByID(uint(id))
	}

	tasks, err := h.taskService.Get(ctx, token, sel)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.FormatTasks(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id")
	}

	task, err := h.taskService.GetByID(ctx, uint(id))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.taskService.UpdateIsDone(ctx, token, uint(id), req.IsDone); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task id")
	}

	deleted, err := h.taskService.Delete(ctx, token, uint(id))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteResponse{Deleted: deleted})
}
