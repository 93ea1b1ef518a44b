package gateway_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quantity-digital/qd-post/internal/cache"
	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/metrics"
	"github.com/quantity-digital/qd-post/internal/model"
)

// GatewayCacheDecorator caches decorated posts by id. List and search results
// are not cached; mutations invalidate the affected post.
type GatewayCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewGatewayCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) Service {
	return &GatewayCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *GatewayCacheDecorator) invalidate(ctx context.Context, id int64) {
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
}

func (d *GatewayCacheDecorator) GetPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	return d.service.GetPosts(ctx, query)
}

func (d *GatewayCacheDecorator) SearchPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	return d.service.SearchPosts(ctx, query)
}

func (d *GatewayCacheDecorator) GetPost(ctx context.Context, query model.PostQuery) (*model.Post, error) {
	return d.service.GetPost(ctx, query)
}

func (d *GatewayCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return post, nil
}

func (d *GatewayCacheDecorator) UpdateFields(ctx context.Context, postID int64, fields model.FieldMap) error {
	err := d.service.UpdateFields(ctx, postID, fields)
	d.invalidate(ctx, postID)
	return err
}

func (d *GatewayCacheDecorator) InsertPost(ctx context.Context, post *model.CreatePostDTO, fields model.FieldMap) (int64, error) {
	return d.service.InsertPost(ctx, post, fields)
}

func (d *GatewayCacheDecorator) DeletePost(ctx context.Context, id int64, opts model.DeleteOptions) error {
	err := d.service.DeletePost(ctx, id, opts)
	if err == nil {
		d.invalidate(ctx, id)
	}
	return err
}

func (d *GatewayCacheDecorator) DeleteAttachments(ctx context.Context, postID int64, soft bool) error {
	return d.service.DeleteAttachments(ctx, postID, soft)
}

func (d *GatewayCacheDecorator) AttachUpload(ctx context.Context, postID int64, file model.UploadedFile, customField string) (int64, error) {
	id, err := d.service.AttachUpload(ctx, postID, file, customField)
	if err == nil && customField != "" {
		// The custom-field write changed the parent post's field map.
		d.invalidate(ctx, postID)
	}
	return id, err
}

func (d *GatewayCacheDecorator) AttachUploads(ctx context.Context, postID int64, fileKey string, files model.FileSet) ([]model.UploadResult, error) {
	return d.service.AttachUploads(ctx, postID, fileKey, files)
}
