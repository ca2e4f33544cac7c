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

// RoleService implements role CRUD with the in-use delete guard.
type RoleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.repo.List(ctx)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Role{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("role").Inc()
	s.log.Info().Int64("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, in ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}

	// updated_at refreshes even when no field changed.
	role.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete refuses to remove a role that still has users. The count and the
// delete are two statements; the window between them is accepted for this
// single-writer deployment.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	dependents, err := s.repo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return domain.ErrRoleInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("role").Inc()
	s.log.Info().Int64("role_id", id).Msg("role deleted")
	return nil
}
