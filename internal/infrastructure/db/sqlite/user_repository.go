package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// UserRepository persists users. Rows carry the bcrypt digest; stripping it
// from responses is the API layer's job.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	query := `SELECT * FROM users`
	var conds []string
	var args []any
	if filter.RoleID != nil {
		conds = append(conds, "role_id = ?")
		args = append(args, *filter.RoleID)
	}
	if filter.Username != "" {
		conds = append(conds, "LOWER(username) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Username)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE username = ?`, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, nickname, role_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Username, user.PasswordHash, user.Nickname, user.RoleID, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user: last id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password = ?, nickname = ?, role_id = ?, updated_at = ? WHERE id = ?`,
		user.Username, user.PasswordHash, user.Nickname, user.RoleID, user.UpdatedAt, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE role_id = ?`, roleID); err != nil {
		return 0, fmt.Errorf("count users of role %d: %w", roleID, err)
	}
	return n, nil
}
