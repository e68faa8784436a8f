package processor

import (
	"bytes"
	"context"
	"io"

	"image-resizer/internal/domain/entities"
	"image-resizer/pkg/errors"

	"github.com/disintegration/imaging"
)

const DefaultJPEGQuality = 95

type ImageProcessor struct {
	Filter      imaging.ResampleFilter
	JPEGQuality int // 1-100
}

func NewImageProcessor(jpegQuality int) *ImageProcessor {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	return &ImageProcessor{
		Filter:      imaging.Lanczos,
		JPEGQuality: jpegQuality,
	}
}

// Resize decodes src, scales it to exactly res (aspect ratio is not kept) and encodes it
// again in the format named by ext.
func (p *ImageProcessor) Resize(ctx context.Context, src io.Reader, ext string, res entities.Resolution) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, errors.ErrUnsupportedFormat(err)
	}

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.ErrDecode(err)
	}

	// Fit would keep the ratio; the variant must match the box exactly
	resized := imaging.Resize(img, res.Width, res.Height, p.Filter)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(p.JPEGQuality)); err != nil {
		return nil, errors.ErrEncode(err)
	}
	return buf.Bytes(), nil
}
