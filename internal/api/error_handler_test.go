package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusBadRequest, "validation_error"},
		{"role in use", domain.ErrRoleInUse, http.StatusBadRequest, "in_use"},
		{"category in use", domain.ErrCategoryInUse, http.StatusBadRequest, "in_use"},
		{"last admin", domain.ErrLastAdmin, http.StatusBadRequest, "last_admin"},
		{"duplicate role", domain.ErrRoleExists, http.StatusConflict, "conflict"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "conflict"},
		{"missing role", domain.ErrRoleNotFound, http.StatusNotFound, "not_found"},
		{"missing image", domain.ErrImageNotFound, http.StatusNotFound, "not_found"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := render(t, tc.err)
			if status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, status)
			}
			if resp.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, resp.Code)
			}
		})
	}
}

func TestErrorHandler_HidesInternalCause(t *testing.T) {
	_, resp := render(t, errors.New("password column corrupt"))
	if resp.Error != "internal server error" {
		t.Fatalf("internal cause leaked: %q", resp.Error)
	}
}

func TestErrorHandler_PassesEchoErrorsThrough(t *testing.T) {
	status, resp := render(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if resp.Error != "route not found" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
