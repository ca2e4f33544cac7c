package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Code is a
// stable machine-readable discriminator; Error carries the human message.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "...", "code": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, c)
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: "http_error"}
	}

	// Known domain errors map to deterministic status codes. The in-use and
	// last-admin guards are client mistakes, not resource conflicts, so they
	// render as 400 while duplicate names stay 409.
	switch {
	case errors.Is(err, domain.ErrRoleInUse), errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "in_use"}
	case errors.Is(err, domain.ErrLastAdmin):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "last_admin"}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "validation_error"}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, errorResponse{Error: err.Error(), Code: "conflict"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error(), Code: "not_found"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: "unauthorized"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal_error"}
}
