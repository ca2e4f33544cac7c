package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// AuthHandler serves the login endpoint. The login contract predates the rest
// of the API and keeps its own success/message envelope instead of the shared
// error one.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	RoleID   int64  `json:"role_id"`
}

type loginResponse struct {
	Success bool                 `json:"success"`
	User    *sessionUserResponse `json:"user,omitempty"`
	Message string               `json:"message,omitempty"`
}

// Login verifies a username/password pair. No token and no session: the
// client keeps the returned user payload itself.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, loginResponse{Success: false, Message: "invalid payload"})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, loginResponse{
				Success: false,
				Message: domain.ErrInvalidCredentials.Error(),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User: &sessionUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Nickname: user.Nickname,
			RoleID:   user.RoleID,
		},
	})
}
