package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a target box. Images are scaled to exactly Width x Height.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ResolutionSpec is the ordered list of boxes produced for every original.
type ResolutionSpec []Resolution

// DefaultResolutions is used when no resolution configuration is present.
var DefaultResolutions = ResolutionSpec{
	{Width: 512, Height: 384},
}

// AlternateResolutions is the older, wider default set. It is never applied implicitly;
// set ResizeResolutions to AlternateResolutions.String() to use it.
var AlternateResolutions = ResolutionSpec{
	{Width: 1920, Height: 1080},
	{Width: 1024, Height: 768},
	{Width: 800, Height: 600},
	{Width: 512, Height: 384},
	{Width: 384, Height: 216},
}

// String renders the list in its configuration form, e.g. "800,600;512,384".
func (s ResolutionSpec) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("%d,%d", r.Width, r.Height))
	}
	return strings.Join(parts, ";")
}

// LoadResolutions returns the default list for empty input. Anything else replaces the
// default completely, so a value with no valid pair yields an empty list.
func LoadResolutions(raw string) ResolutionSpec {
	if strings.TrimSpace(raw) == "" {
		out := make(ResolutionSpec, len(DefaultResolutions))
		copy(out, DefaultResolutions)
		return out
	}
	return ParseResolutions(raw)
}

// ParseResolutions parses "W1,H1;W2,H2;...". Malformed pairs are dropped.
func ParseResolutions(raw string) ResolutionSpec {
	spec := ResolutionSpec{}
	for _, entry := range strings.Split(raw, ";") {
		parts := strings.Split(entry, ",")
		if len(parts) != 2 {
			continue
		}

		width, werr := parseDimension(parts[0])
		height, herr := parseDimension(parts[1])
		if werr != nil || herr != nil {
			continue
		}
		spec = append(spec, Resolution{Width: width, Height: height})
	}
	return spec
}

func parseDimension(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("dimension must be positive: %d", v)
	}
	return v, nil
}
