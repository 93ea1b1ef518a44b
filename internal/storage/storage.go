package storage

import (
	"context"
	"io"
)

// Backend stores uploaded file blobs by object key.
type Backend interface {
	// Upload stores the content under the object key.
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download returns the stored content.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the stored content.
	Delete(ctx context.Context, objectKey string) error
}
