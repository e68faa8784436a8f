package repositories

import (
	"context"
	"io"

	"image-resizer/internal/domain/entities"
)

// Resizer turns one encoded image into another of exactly res, in the format named by ext.
type Resizer interface {
	Resize(ctx context.Context, src io.Reader, ext string, res entities.Resolution) ([]byte, error)
}
