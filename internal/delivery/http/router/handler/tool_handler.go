package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vuttr/internal/delivery/http/response"
	domainerrors "vuttr/internal/domain/errors"
	"vuttr/internal/errors"
	"vuttr/internal/usecase"
)

// ToolHandler serves the tool catalog.
type ToolHandler struct {
	uc usecase.ToolUsecase
}

func NewToolHandler(uc usecase.ToolUsecase) *ToolHandler {
	return &ToolHandler{uc: uc}
}

// List handles GET /api/tools and GET /api/tools?tag=x.
func (h *ToolHandler) List(c echo.Context) error {
	tools, err := h.uc.List(c.Request().Context(), c.QueryParam("tag"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tools, "")
}

func (h *ToolHandler) Get(c echo.Context) error {
	id, err := toolID(c)
	if err != nil {
		return err
	}

	tool, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tool, "")
}

func (h *ToolHandler) Create(c echo.Context) error {
	var input usecase.ToolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tool input")
	}

	tool, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Path()+"/"+strconv.Itoa(tool.ID))

	return response.Success(c, http.StatusCreated, tool, "Tool created successfully")
}

func (h *ToolHandler) Update(c echo.Context) error {
	id, err := toolID(c)
	if err != nil {
		return err
	}

	var input usecase.ToolInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tool input")
	}

	tool, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tool, "Tool updated successfully")
}

func (h *ToolHandler) Delete(c echo.Context) error {
	id, err := toolID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toolID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidToolID.WithDetails("tool id must be a positive integer")
	}

	return id, nil
}
