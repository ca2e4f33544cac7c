package domain

import "time"

// AdminRoleName is the distinguished administrator role. The seed data creates
// it and the user service refuses to delete the last user holding it.
const AdminRoleName = "管理员"

// Role groups users by permission level.
type Role struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
