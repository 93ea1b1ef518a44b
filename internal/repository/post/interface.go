package post_repository

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Query(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Insert(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	// Delete trashes the post when soft is true and removes it permanently
	// otherwise.
	Delete(ctx context.Context, id int64, soft bool) error
}
