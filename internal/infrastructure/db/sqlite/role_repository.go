package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// RoleRepository persists roles. It owns the roles table; the dependent-user
// count is a read-only query against users.
type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	roles := []domain.Role{}
	if err := r.db.SelectContext(ctx, &roles, `SELECT * FROM roles ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.GetContext(ctx, &role, `SELECT * FROM roles WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role %d: %w", id, err)
	}
	return &role, nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.GetContext(ctx, &role, `SELECT * FROM roles WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role %q: %w", name, err)
	}
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		role.Name, role.Description, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert role: last id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		role.Name, role.Description, role.UpdatedAt, role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("update role %d: %w", role.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		// Backstop behind the service guard: the FK from users fires if a
		// user slipped in between the count and the delete.
		if isForeignKeyViolation(err) {
			return domain.ErrRoleInUse
		}
		return fmt.Errorf("delete role %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepository) CountUsers(ctx context.Context, roleID int64) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE role_id = ?`, roleID); err != nil {
		return 0, fmt.Errorf("count users of role %d: %w", roleID, err)
	}
	return n, nil
}
