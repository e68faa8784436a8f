package file

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Stem strips the final extension from name.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// VariantName builds "{stem}.{width}-{height}{ext}". ext keeps its leading dot.
func VariantName(stem string, width, height int, ext string) string {
	return fmt.Sprintf("%s.%d-%d%s", stem, width, height, ext)
}

// VariantFolder is the folder a variant is written to: "{root}/{subfolder}".
func VariantFolder(root, subfolder string) string {
	return path.Join(root, subfolder)
}

// MakeKey joins folder and name into an object key.
func MakeKey(folder, name string) string {
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
