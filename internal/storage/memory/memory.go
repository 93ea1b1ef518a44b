package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/storage"
)

// MemoryBackend is an in-memory implementation of storage.Backend, used in
// tests and local development.
type MemoryBackend struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryBackend() storage.Backend {
	return &MemoryBackend{
		objects: make(map[string][]byte),
	}
}

func (b *MemoryBackend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = data
	return nil
}

func (b *MemoryBackend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, exists := b.objects[objectKey]
	if !exists {
		return nil, custom_errors.ErrObjectNotFound
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *MemoryBackend) Delete(ctx context.Context, objectKey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[objectKey]; !exists {
		return custom_errors.ErrObjectNotFound
	}

	delete(b.objects, objectKey)
	return nil
}
