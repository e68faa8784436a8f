package file

import (
	"github.com/disintegration/imaging"
)

// IsImageFile reports whether the extension maps to a format imaging can both decode and encode.
func IsImageFile(filename string) bool {
	_, err := imaging.FormatFromFilename(filename)
	return err == nil
}
