package ports

import (
	"context"
	"io"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

// ImageFilter narrows List results. Zero values mean "no filter".
type ImageFilter struct {
	CategoryID *int64 // exact match
	Name       string // case-insensitive substring
}

// ImageUpload is an uploaded file as handed over by the transport layer,
// already validated: an opaque byte stream plus its original filename.
type ImageUpload struct {
	File     io.Reader
	Filename string
}

// CreateImageInput carries the fields accepted when creating an image. Upload
// is mandatory on create.
type CreateImageInput struct {
	CategoryID  int64
	Name        string
	Description string
	Upload      *ImageUpload
}

// UpdateImageInput is a partial update: nil fields keep their prior value. A
// non-nil Upload replaces the stored file; the previous file is removed
// best-effort.
type UpdateImageInput struct {
	CategoryID  *int64
	Name        *string
	Description *string
	Upload      *ImageUpload
}

// ImageRepository defines persistence operations for images.
type ImageRepository interface {
	List(ctx context.Context, filter ImageFilter) ([]domain.Image, error)
	GetByID(ctx context.Context, id int64) (*domain.Image, error)
	Create(ctx context.Context, image *domain.Image) (*domain.Image, error)
	Update(ctx context.Context, image *domain.Image) error
	Delete(ctx context.Context, id int64) error
}

// ImageService defines use-case operations for images, including the file
// lifecycle delegated to the asset store.
type ImageService interface {
	List(ctx context.Context, filter ImageFilter) ([]domain.Image, error)
	Get(ctx context.Context, id int64) (*domain.Image, error)
	Create(ctx context.Context, in CreateImageInput) (*domain.Image, error)
	Update(ctx context.Context, id int64, in UpdateImageInput) (*domain.Image, error)
	Delete(ctx context.Context, id int64) error
}
