package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

const postKeyPrefix = "post:"

// PostCache stores decorated posts (including their field maps) as JSON.
type PostCache struct {
	client *Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log *logger.Logger, ttl time.Duration) *PostCache {
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func postKey(id int64) string {
	return fmt.Sprintf("%s%d", postKeyPrefix, id)
}

func (c *PostCache) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, postKey(id), &post); err != nil {
		return nil, err
	}
	if post.Fields == nil {
		post.Fields = model.FieldMap{}
	}
	return &post, nil
}

func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, postKey(post.ID), post, c.ttl)
}

func (c *PostCache) DeletePost(ctx context.Context, id int64) error {
	return c.client.Delete(ctx, postKey(id))
}
