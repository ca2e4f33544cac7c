package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
)

// CategoryHandler handles HTTP requests for image category operations.
type CategoryHandler struct {
	service ports.CategoryService
	times   *timeutil.Formatter
}

func NewCategoryHandler(service ports.CategoryService, times *timeutil.Formatter) *CategoryHandler {
	return &CategoryHandler{service: service, times: times}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *CategoryHandler) toResponse(category *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   h.times.Format(category.CreatedAt),
		UpdatedAt:   h.times.Format(category.UpdatedAt),
	}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, h.toResponse(&categories[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validateError(err)
	}

	category, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(category))
}

// Update handles PUT /api/categories/:id. Absent fields keep their prior value.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	category, err := h.service.Update(c.Request().Context(), id, ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(category))
}

// Delete handles DELETE /api/categories/:id. A category with images is refused.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
