package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/api/metrics"
	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// ImageService implements image CRUD plus the file lifecycle: uploads go
// through the asset store before the row is written, and files are removed
// best-effort when their record is replaced or deleted.
type ImageService struct {
	repo       ports.ImageRepository
	categories ports.CategoryRepository
	assets     ports.AssetStore
	log        zerolog.Logger
}

func NewImageService(
	repo ports.ImageRepository,
	categories ports.CategoryRepository,
	assets ports.AssetStore,
	log zerolog.Logger,
) *ImageService {
	return &ImageService{repo: repo, categories: categories, assets: assets, log: log}
}

func (s *ImageService) List(ctx context.Context, filter ports.ImageFilter) ([]domain.Image, error) {
	return s.repo.List(ctx, filter)
}

func (s *ImageService) Get(ctx context.Context, id int64) (*domain.Image, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ImageService) Create(ctx context.Context, in ports.CreateImageInput) (*domain.Image, error) {
	if in.Upload == nil {
		return nil, fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}
	if in.CategoryID == 0 || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: category_id and name are required", domain.ErrValidation)
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	path, err := s.assets.Store(in.Upload.File, in.Upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("store image file: %w", err)
	}
	metrics.UploadsStoredTotal.Inc()

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Image{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Path:        path,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		// The row never existed; don't leave the file orphaned.
		s.removeFile(path)
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("image").Inc()
	s.log.Info().Int64("image_id", created.ID).Str("path", created.Path).Msg("image created")
	return created, nil
}

// Update applies a partial update. A replacement file disposes of the old one
// before the new path is recorded.
func (s *ImageService) Update(ctx context.Context, id int64, in ports.UpdateImageInput) (*domain.Image, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		image.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		image.Name = *in.Name
	}
	if in.Description != nil {
		image.Description = *in.Description
	}

	var newPath string
	if in.Upload != nil {
		newPath, err = s.assets.Store(in.Upload.File, in.Upload.Filename)
		if err != nil {
			return nil, fmt.Errorf("store image file: %w", err)
		}
		metrics.UploadsStoredTotal.Inc()
		s.removeFile(image.Path)
		image.Path = newPath
	}

	image.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, image); err != nil {
		if newPath != "" {
			s.removeFile(newPath)
		}
		return nil, err
	}
	return image, nil
}

// Delete removes the record, then the file. File removal is best-effort: a
// failure is logged and counted but never rolls back the record deletion.
func (s *ImageService) Delete(ctx context.Context, id int64) error {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFile(image.Path)
	metrics.RecordsDeletedTotal.WithLabelValues("image").Inc()
	s.log.Info().Int64("image_id", id).Msg("image deleted")
	return nil
}

func (s *ImageService) removeFile(path string) {
	if path == "" {
		return
	}
	if err := s.assets.Remove(path); err != nil {
		metrics.AssetCleanupFailuresTotal.Inc()
		s.log.Warn().Err(err).Str("path", path).Msg("asset cleanup failed")
		return
	}
	metrics.UploadsRemovedTotal.Inc()
}
