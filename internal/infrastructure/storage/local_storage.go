package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"image-resizer/pkg/constants"
)

// LocalStorage keeps objects as files under BasePath, one file per key.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Upload(ctx context.Context, body io.Reader, metadata map[string]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := metadata[constants.MetaFilename]
	if filename == "" {
		return "", fmt.Errorf("metadata %q is required", constants.MetaFilename)
	}
	fullPath, err := l.resolve(filepath.Join(metadata[constants.MetaFolder], filename))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	// write next to the target, then rename, so readers never see a partial variant
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", fmt.Errorf("dosya taşınamadı: %w", err)
	}

	return fullPath, nil
}

func (l *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	fullPath, err := l.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}
	return os.Remove(fullPath)
}

func (l *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	fullPath, err := l.resolve(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// resolve maps key under BasePath and refuses keys that climb out of it.
func (l *LocalStorage) resolve(key string) (string, error) {
	fullPath := filepath.Join(l.BasePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.BasePath, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return fullPath, nil
}
