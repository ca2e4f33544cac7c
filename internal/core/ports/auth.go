package ports

import "context"

// SessionUser is the sanitized payload returned on a successful login. The
// caller persists it client-side; the server keeps no session state and issues
// no token. The password hash is excluded unconditionally.
type SessionUser struct {
	ID       int64
	Username string
	Nickname string
	RoleID   int64
}

// AuthService verifies a username/password pair against the user store.
type AuthService interface {
	// Login returns domain.ErrInvalidCredentials for both an unknown
	// username and a wrong password, so callers cannot enumerate accounts.
	Login(ctx context.Context, username, password string) (*SessionUser, error)
}
