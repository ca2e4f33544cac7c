package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
)

// RoleHandler handles HTTP requests for role operations.
type RoleHandler struct {
	service ports.RoleService
	times   *timeutil.Formatter
}

func NewRoleHandler(service ports.RoleService, times *timeutil.Formatter) *RoleHandler {
	return &RoleHandler{service: service, times: times}
}

type createRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateRoleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type roleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *RoleHandler) toResponse(role *domain.Role) roleResponse {
	return roleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   h.times.Format(role.CreatedAt),
		UpdatedAt:   h.times.Format(role.UpdatedAt),
	}
}

// List handles GET /api/roles.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]roleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, h.toResponse(&roles[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/roles.
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validateError(err)
	}

	role, err := h.service.Create(c.Request().Context(), ports.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(role))
}

// Update handles PUT /api/roles/:id. Absent fields keep their prior value.
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	role, err := h.service.Update(c.Request().Context(), id, ports.UpdateRoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(role))
}

// Delete handles DELETE /api/roles/:id. A role with users is refused.
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
