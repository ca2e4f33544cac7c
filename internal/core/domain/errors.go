package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one kind so the HTTP
// boundary can resolve a status code with errors.Is regardless of which entity
// raised it.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var (
	ErrRoleNotFound = fmt.Errorf("role: %w", ErrNotFound)
	ErrRoleExists   = fmt.Errorf("role name taken: %w", ErrConflict)
	// ErrRoleInUse guards deletion of a role that still has users.
	ErrRoleInUse = fmt.Errorf("role in use: %w", ErrConflict)

	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)
	ErrUserExists   = fmt.Errorf("username taken: %w", ErrConflict)
	// ErrLastAdmin guards deletion of the last user holding the
	// administrator role.
	ErrLastAdmin = fmt.Errorf("last administrator: %w", ErrConflict)

	ErrCategoryNotFound = fmt.Errorf("category: %w", ErrNotFound)
	ErrCategoryExists   = fmt.Errorf("category name taken: %w", ErrConflict)
	// ErrCategoryInUse guards deletion of a category that still has images.
	ErrCategoryInUse = fmt.Errorf("category in use: %w", ErrConflict)

	ErrImageNotFound = fmt.Errorf("image: %w", ErrNotFound)
)
