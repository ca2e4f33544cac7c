package domain

import "time"

// DefaultPassword is the well-known credential applied by the reset-password
// endpoint and the seeded admin account. Deliberate operational backdoor;
// changing it changes observable behaviour.
const DefaultPassword = "dzt123"

// User models an operator account. PasswordHash is a bcrypt digest and never
// leaves the service layer.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	Nickname     string    `db:"nickname"`
	RoleID       int64     `db:"role_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
