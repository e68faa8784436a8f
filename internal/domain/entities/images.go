package entities

import (
	"path/filepath"
	"strings"
)

// SourceAsset is one original picked up from storage. Data holds the whole blob so every
// resize reads it from the start.
type SourceAsset struct {
	Name      string // logical name, e.g. "3fa85f64-5717-4562-b3fc-2c963f66afa6.jpg"
	Subfolder string
	Data      []byte
}

// Ext returns the extension including its leading dot.
func (a SourceAsset) Ext() string {
	return filepath.Ext(a.Name)
}

// Stem returns the name without its extension.
func (a SourceAsset) Stem() string {
	return strings.TrimSuffix(a.Name, filepath.Ext(a.Name))
}

// Variant is the outcome of one resolution.
type Variant struct {
	Resolution Resolution
	Key        string // destination key, empty when the resize failed
	Location   string // what the storage returned for the upload
	Size       int
	Success    bool // resize produced a non-empty buffer
	Uploaded   bool
	Err        error
}
