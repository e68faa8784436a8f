package file

import (
	"net/url"
	"strings"
)

// SourceKey is a parsed "{root}/{subfolder}/{marker}{name}" object key.
type SourceKey struct {
	Key       string
	Subfolder string
	Name      string
}

// ParseSourceKey matches key against "{root}/{subfolder}/{marker}{name}". subfolder is a
// single non-empty segment. Keys that do not match are not originals.
func ParseSourceKey(key, root, marker string) (SourceKey, bool) {
	rest, ok := strings.CutPrefix(key, strings.Trim(root, "/")+"/")
	if !ok {
		return SourceKey{}, false
	}

	subfolder, base, ok := strings.Cut(rest, "/")
	if !ok || subfolder == "" || strings.Contains(base, "/") {
		return SourceKey{}, false
	}

	name, ok := strings.CutPrefix(base, marker)
	if !ok || name == "" {
		return SourceKey{}, false
	}

	return SourceKey{Key: key, Subfolder: subfolder, Name: name}, true
}

// UnescapeEventKey decodes an object key as delivered in S3 event notifications,
// where spaces arrive as '+'.
func UnescapeEventKey(key string) (string, error) {
	return url.QueryUnescape(key)
}
