package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dongzhentu/gallery-admin/internal/api/metrics"
	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// AuthService verifies credentials against the user store. Login is stateless
// and token-less: the sanitized payload is the whole session, persisted by
// the caller.
type AuthService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Login authenticates a username/password pair. An unknown username and a
// wrong password return the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.SessionUser, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.log.Debug().Str("username", username).Msg("login failed: unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Debug().Str("username", username).Msg("login failed: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("username", username).Msg("login successful")

	return &ports.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		RoleID:   user.RoleID,
	}, nil
}
