package ports

import (
	"context"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// UserFilter narrows List results. Zero values mean "no filter".
type UserFilter struct {
	RoleID   *int64 // exact match
	Username string // case-insensitive substring
}

// CreateUserInput carries the fields accepted when creating a user. Password
// is plaintext here and hashed by the service before it reaches persistence.
type CreateUserInput struct {
	Username string
	Password string
	Nickname string
	RoleID   int64
}

// UpdateUserInput is a partial update: nil fields keep their prior value.
// Changing the password requires both OldPassword and NewPassword; the old one
// must verify against the stored hash.
type UpdateUserInput struct {
	Username    *string
	Nickname    *string
	RoleID      *int64
	OldPassword *string
	NewPassword *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	// CountByRole reports how many users hold the given role (last-admin
	// guard).
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	// ResetPassword sets the user's password back to the documented default
	// credential.
	ResetPassword(ctx context.Context, id int64) error
}
