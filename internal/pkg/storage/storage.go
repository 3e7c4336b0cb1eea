package storage

import (
	"context"
	"io"
)

// FileStorage persists generated report artifacts so the download links
// in the report e-mail keep resolving after the send.
type FileStorage interface {
	// Save writes a file and returns the stored path/key
	Save(ctx context.Context, content io.Reader, path string) (string, error)

	// Open retrieves a stored file
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored file
	URL(path string) string

	// Exists checks if a stored file exists
	Exists(ctx context.Context, path string) (bool, error)
}
