package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// pathID parses the :id route parameter. A malformed or non-positive id is a
// client error, not a missing resource.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, c.Param("id"))
	}
	return id, nil
}

// queryID parses an optional numeric query parameter. Absent means no filter;
// a present but malformed value is rejected.
func queryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, name, raw)
	}
	return &id, nil
}

// bindError normalises echo bind failures into the validation error kind so
// the central error handler renders them as 400s.
func bindError(err error) error {
	return fmt.Errorf("%w: invalid payload: %v", domain.ErrValidation, err)
}

// validateError wraps validator messages into the validation error kind.
func validateError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
