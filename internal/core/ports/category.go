package ports

import (
	"context"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// CreateCategoryInput carries the fields accepted when creating a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput is a partial update: nil fields keep their prior value.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryRepository defines persistence operations for image categories.
// CountImages is the read-only dependent-entity guard issued before a delete.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
	// CountImages reports how many images reference the category.
	CountImages(ctx context.Context, categoryID int64) (int64, error)
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
