package upload

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name Uploader --dir . --output ../../mocks/upload --outpkg mocks --filename Uploader.go
type Uploader interface {
	// Upload validates and stores one file, creating an attachment post
	// parented to parentID.
	Upload(ctx context.Context, parentID int64, file model.UploadedFile) (*model.Attachment, error)
	// DeleteAttachment trashes the attachment post when soft is true;
	// otherwise it removes the stored blob, the post and its fields.
	DeleteAttachment(ctx context.Context, id int64, soft bool) error
}
