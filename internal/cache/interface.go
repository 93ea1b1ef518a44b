package cache

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name PostCache --dir . --output ../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	// GetPost returns the cached decorated post or custom_errors.ErrCacheMiss.
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) error
}
