package field_repository

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/field --outpkg mocks --filename Repository.go
type Repository interface {
	// GetByPost returns every custom field stored for the post. A post with
	// no fields yields an empty, non-nil map.
	GetByPost(ctx context.Context, postID int64) (model.FieldMap, error)
	// Update upserts a single field value for the post.
	Update(ctx context.Context, postID int64, key string, value any) error
	// DeleteByPost drops every field stored for the post.
	DeleteByPost(ctx context.Context, postID int64) error
}
