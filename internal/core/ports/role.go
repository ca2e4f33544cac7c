package ports

import (
	"context"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// CreateRoleInput carries the fields accepted when creating a role.
type CreateRoleInput struct {
	Name        string
	Description string
}

// UpdateRoleInput is a partial update: nil fields keep their prior value.
type UpdateRoleInput struct {
	Name        *string
	Description *string
}

// RoleRepository defines persistence operations for roles. The repository owns
// the roles table; CountUsers is the read-only dependent-entity guard issued
// before a delete.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
	// CountUsers reports how many users reference the role.
	CountUsers(ctx context.Context, roleID int64) (int64, error)
}

// RoleService defines use-case operations for roles.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, in CreateRoleInput) (*domain.Role, error)
	Update(ctx context.Context, id int64, in UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
