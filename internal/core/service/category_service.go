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

// CategoryService implements image-category CRUD with the in-use delete guard.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("category").Inc()
	s.log.Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	category.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has images.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	dependents, err := s.repo.CountImages(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return domain.ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("category").Inc()
	s.log.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
