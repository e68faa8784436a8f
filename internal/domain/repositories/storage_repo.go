package repositories

import (
	"context"
	"io"
)

// StorageStrategy is the blob store originals are read from and variants are written to.
// Upload understands the metadata keys in pkg/constants; "filename" is required and
// "folder" is optional. The returned string locates the stored object.
type StorageStrategy interface {
	Upload(ctx context.Context, body io.Reader, metadata map[string]string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
