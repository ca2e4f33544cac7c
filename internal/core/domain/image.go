package domain

import "time"

// Image is a catalogued asset. Path is assigned by the asset store on upload
// and is opaque to the repository; ownership of the underlying file stays with
// the store.
type Image struct {
	ID          int64     `db:"id"`
	CategoryID  int64     `db:"category_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Path        string    `db:"image_path"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
