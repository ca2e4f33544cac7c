package ports

import "io"

// AssetStore is the consumed interface of the asset ingestion gateway. It owns
// the physical files behind image records: it assigns collision-resistant
// storage paths on upload and disposes of files when records are replaced or
// removed.
type AssetStore interface {
	// Store persists the uploaded bytes under a generated filename and
	// returns the stable relative path to record against the image row.
	Store(src io.Reader, originalName string) (string, error)
	// Remove deletes the file at the given relative path. Best-effort: a
	// missing file is not an error.
	Remove(relativePath string) error
}
