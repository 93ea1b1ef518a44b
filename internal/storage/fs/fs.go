package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/storage"
)

// Config options for the file system backend.
type Config struct {
	BaseDir string
}

// FSBackend stores objects as files under a base directory.
type FSBackend struct {
	baseDir string
}

func NewFSBackend(config Config) (storage.Backend, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &FSBackend{baseDir: config.BaseDir}, nil
}

func (b *FSBackend) path(objectKey string) string {
	return filepath.Join(b.baseDir, filepath.FromSlash(objectKey))
}

func (b *FSBackend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	path := b.path(objectKey)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	return nil
}

func (b *FSBackend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	file, err := os.Open(b.path(objectKey))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, custom_errors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return file, nil
}

func (b *FSBackend) Delete(ctx context.Context, objectKey string) error {
	err := os.Remove(b.path(objectKey))
	if err != nil {
		if os.IsNotExist(err) {
			return custom_errors.ErrObjectNotFound
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
