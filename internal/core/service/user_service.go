package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/api/metrics"
	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// UserService implements user CRUD: password hashing, the role foreign-key
// check, the last-administrator delete guard, and the reset-to-default
// backdoor.
type UserService struct {
	repo  ports.UserRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, roles ports.RoleRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, roles: roles, log: log}
}

func (s *UserService) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if in.RoleID == 0 {
		return nil, fmt.Errorf("%w: role_id is required", domain.ErrValidation)
	}
	if _, err := s.roles.GetByID(ctx, in.RoleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: role does not exist", domain.ErrValidation)
		}
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Nickname:     in.Nickname,
		RoleID:       in.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("user").Inc()
	s.log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update applies a partial update. A password change requires both the old
// and the new password; the old one must verify against the stored hash.
func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
		}
		user.Username = *in.Username
	}
	if in.Nickname != nil {
		user.Nickname = *in.Nickname
	}
	if in.RoleID != nil {
		if _, err := s.roles.GetByID(ctx, *in.RoleID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: role does not exist", domain.ErrValidation)
			}
			return nil, err
		}
		user.RoleID = *in.RoleID
	}

	if (in.OldPassword == nil) != (in.NewPassword == nil) {
		return nil, fmt.Errorf("%w: old_password and new_password must be supplied together", domain.ErrValidation)
	}
	if in.OldPassword != nil {
		if !verifyPassword(*in.OldPassword, user.PasswordHash) {
			return nil, domain.ErrInvalidCredentials
		}
		if *in.NewPassword == "" {
			return nil, fmt.Errorf("%w: new_password must not be empty", domain.ErrValidation)
		}
		hash, err := hashPassword(*in.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete refuses to remove the last user holding the administrator role, so
// the system can never lock everyone out.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	adminRole, err := s.roles.GetByName(ctx, domain.AdminRoleName)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// No administrator role seeded; nothing to guard.
	case err != nil:
		return err
	case user.RoleID == adminRole.ID:
		admins, err := s.repo.CountByRole(ctx, adminRole.ID)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("user").Inc()
	s.log.Info().Int64("user_id", id).Str("username", user.Username).Msg("user deleted")
	return nil
}

// ResetPassword sets the user's password back to the documented default
// credential. Intentional operational recovery path.
func (s *UserService) ResetPassword(ctx context.Context, id int64) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := hashPassword(domain.DefaultPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Warn().Int64("user_id", id).Str("username", user.Username).Msg("password reset to default")
	return nil
}
