package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
)

// UserHandler handles HTTP requests for user account operations. Responses
// never include the password hash.
type UserHandler struct {
	service ports.UserService
	times   *timeutil.Formatter
}

func NewUserHandler(service ports.UserService, times *timeutil.Formatter) *UserHandler {
	return &UserHandler{service: service, times: times}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname"`
	RoleID   int64  `json:"role_id" validate:"required,gt=0"`
}

type updateUserRequest struct {
	Username    *string `json:"username"`
	Nickname    *string `json:"nickname"`
	RoleID      *int64  `json:"role_id"`
	OldPassword *string `json:"old_password"`
	NewPassword *string `json:"new_password"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname"`
	RoleID    int64  `json:"role_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *UserHandler) toResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		RoleID:    user.RoleID,
		CreatedAt: h.times.Format(user.CreatedAt),
		UpdatedAt: h.times.Format(user.UpdatedAt),
	}
}

// List handles GET /api/users?role_id=&username=.
func (h *UserHandler) List(c echo.Context) error {
	roleID, err := queryID(c, "role_id")
	if err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context(), ports.UserFilter{
		RoleID:   roleID,
		Username: c.QueryParam("username"),
	})
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, h.toResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/users. The plaintext password is hashed by the
// service before persistence.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validateError(err)
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Nickname: req.Nickname,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(user))
}

// Update handles PUT /api/users/:id. Changing the password requires both
// old_password and new_password; a wrong old password yields 401.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username:    req.Username,
		Nickname:    req.Nickname,
		RoleID:      req.RoleID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(user))
}

// Delete handles DELETE /api/users/:id. The last administrator is refused.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ResetPassword handles POST /api/users/:id/reset-password. The password goes
// back to the documented default credential.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.ResetPassword(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
