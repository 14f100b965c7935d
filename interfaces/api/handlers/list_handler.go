package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todo-backend/domain/dto"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

type ListHandler struct {
	listService services.ListService
}

func NewListHandler(listService services.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

func (h *ListHandler) CreateList(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	var req dto.CreateListRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	lists, err := h.listService.Create(ctx, token, req.Name, req.Description, req.IsDone)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.FormatLists(lists))
}

func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	sel := services.AllLists()
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid list id")
		}
		sel = services.ListByID(uint(id))
	}

	lists, err := h.listService.Get(ctx, token, sel)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.FormatLists(lists))
}

func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	// An id wins over a name; a zero id counts as absent.
	var sel services.ListSelector
	idStr := c.Query("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if idStr != "" && err != nil {
		return utils.BadRequestResponse(c, "Invalid list id")
	}
	if id != 0 {
		sel = services.ListByID(uint(id))
	} else {
		sel = services.ListByName(c.Query("name"))
	}

	deleted, err := h.listService.Delete(ctx, token, sel)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.DeleteResponse{Deleted: deleted})
}

func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	ctx := c.UserContext()
	token := accessToken(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid list id")
	}

	var req dto.UpdateListRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := h.listService.UpdateIsDone(ctx, token, uint(id), req.IsDone); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}
