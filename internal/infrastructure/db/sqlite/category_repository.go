package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// CategoryRepository persists image categories.
type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := r.db.SelectContext(ctx, &categories, `SELECT * FROM image_categories ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.GetContext(ctx, &category, `SELECT * FROM image_categories WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO image_categories (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		category.Name, category.Description, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert category: last id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE image_categories SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		category.Name, category.Description, category.UpdatedAt, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM image_categories WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) CountImages(ctx context.Context, categoryID int64) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM images WHERE category_id = ?`, categoryID); err != nil {
		return 0, fmt.Errorf("count images of category %d: %w", categoryID, err)
	}
	return n, nil
}
