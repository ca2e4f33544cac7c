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

// ImageRepository persists image records. The file behind image_path belongs
// to the asset store, not to this repository.
type ImageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) List(ctx context.Context, filter ports.ImageFilter) ([]domain.Image, error) {
	query := `SELECT * FROM images`
	var conds []string
	var args []any
	if filter.CategoryID != nil {
		conds = append(conds, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Name != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Name)+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	images := []domain.Image{}
	if err := r.db.SelectContext(ctx, &images, query, args...); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id int64) (*domain.Image, error) {
	var image domain.Image
	if err := r.db.GetContext(ctx, &image, `SELECT * FROM images WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("get image %d: %w", id, err)
	}
	return &image, nil
}

func (r *ImageRepository) Create(ctx context.Context, image *domain.Image) (*domain.Image, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO images (category_id, name, description, image_path, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		image.CategoryID, image.Name, image.Description, image.Path, image.CreatedAt, image.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("insert image: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert image: last id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ImageRepository) Update(ctx context.Context, image *domain.Image) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE images SET category_id = ?, name = ?, description = ?, image_path = ?, updated_at = ? WHERE id = ?`,
		image.CategoryID, image.Name, image.Description, image.Path, image.UpdatedAt, image.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update image %d: %w", image.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete image %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
