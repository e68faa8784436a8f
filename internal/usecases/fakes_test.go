package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"image-resizer/internal/domain/entities"
	"image-resizer/pkg/constants"
	"image-resizer/pkg/file"

	"go.uber.org/zap/zaptest/observer"
)

type resizeCall struct {
	Res  entities.Resolution
	Ext  string
	Read []byte // everything the resizer could read from its reader
}

// fakeResizer records calls and returns canned output per resolution.
type fakeResizer struct {
	mu     sync.Mutex
	calls  []resizeCall
	fail   map[entities.Resolution]error
	empty  map[entities.Resolution]bool
	output func(entities.Resolution) []byte
}

func (f *fakeResizer) Resize(ctx context.Context, src io.Reader, ext string, res entities.Resolution) ([]byte, error) {
	read, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls = append(f.calls, resizeCall{Res: res, Ext: ext, Read: read})
	f.mu.Unlock()

	if err := f.fail[res]; err != nil {
		return nil, err
	}
	if f.empty[res] {
		return []byte{}, nil
	}
	if f.output != nil {
		return f.output(res), nil
	}
	return []byte(res.String()), nil
}

type uploadCall struct {
	Key      string
	Data     []byte
	Metadata map[string]string
}

// fakeStorage is an in-memory StorageStrategy.
type fakeStorage struct {
	mu          sync.Mutex
	uploads     []uploadCall
	objects     map[string][]byte
	failUpload  map[string]error // by key
	downloadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, failUpload: map[string]error{}}
}

func (f *fakeStorage) Upload(ctx context.Context, body io.Reader, metadata map[string]string) (string, error) {
	key := file.MakeKey(metadata[constants.MetaFolder], metadata[constants.MetaFilename])
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, uploadCall{Key: key, Data: data, Metadata: metadata})
	if err := f.failUpload[key]; err != nil {
		return "", err
	}
	f.objects[key] = data
	return "mem://" + key, nil
}

func (f *fakeStorage) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	if f.downloadErr != nil {
		return nil, 0, f.downloadErr
	}
	f.mu.Lock()
	data, ok := f.objects[key]
	f.mu.Unlock()
	if !ok {
		return nil, 0, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) uploadedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for _, u := range f.uploads {
		keys = append(keys, u.Key)
	}
	return keys
}

type observerLogs struct {
	logs *observer.ObservedLogs
}

func (o *observerLogs) single(t *testing.T, msg string) observer.LoggedEntry {
	t.Helper()
	found := o.logs.FilterMessage(msg).All()
	if len(found) != 1 {
		t.Fatalf("log %q seen %d times, want 1", msg, len(found))
	}
	return found[0]
}
