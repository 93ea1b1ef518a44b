package gateway_service

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/gateway --outpkg mocks --filename Service.go
type Service interface {
	// GetPosts runs a generic post query. Every returned post carries a
	// non-nil field map.
	GetPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
	// SearchPosts has the same contract as GetPosts but runs through the
	// full-text search engine.
	SearchPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
	// GetPost returns the first match of the query, always requesting
	// exactly one result regardless of the caller-supplied limit.
	GetPost(ctx context.Context, query model.PostQuery) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)

	// UpdateFields writes each field individually; per-field failures do not
	// stop the remaining updates.
	UpdateFields(ctx context.Context, postID int64, fields model.FieldMap) error
	// InsertPost creates a post and then applies the custom fields, returning
	// the new post id.
	InsertPost(ctx context.Context, post *model.CreatePostDTO, fields model.FieldMap) (int64, error)
	// DeletePost deletes a post. With opts.DeleteAttachments set, attachment
	// cleanup runs first and any cleanup failure aborts the post deletion.
	DeletePost(ctx context.Context, id int64, opts model.DeleteOptions) error
	// DeleteAttachments deletes every attachment parented to the post,
	// attempting all of them even after a failure.
	DeleteAttachments(ctx context.Context, postID int64, soft bool) error

	// AttachUpload stores one file as an attachment of the post. When
	// customField is non-empty, the attachment URL is written to that field
	// on the parent post.
	AttachUpload(ctx context.Context, postID int64, file model.UploadedFile, customField string) (int64, error)
	// AttachUploads processes the files submitted under fileKey, producing
	// one result per file in submission order.
	AttachUploads(ctx context.Context, postID int64, fileKey string, files model.FileSet) ([]model.UploadResult, error)
}
