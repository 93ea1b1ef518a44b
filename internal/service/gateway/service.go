package gateway_service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/metrics"
	"github.com/quantity-digital/qd-post/internal/model"
	field_repository "github.com/quantity-digital/qd-post/internal/repository/field"
	post_repository "github.com/quantity-digital/qd-post/internal/repository/post"
	"github.com/quantity-digital/qd-post/internal/search"
	"github.com/quantity-digital/qd-post/internal/upload"
)

type GatewayService struct {
	postRepo  post_repository.Repository
	fieldRepo field_repository.Repository
	searcher  search.Searcher
	uploader  upload.Uploader
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewGatewayService(
	postRepo post_repository.Repository,
	fieldRepo field_repository.Repository,
	searcher search.Searcher,
	uploader upload.Uploader,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *GatewayService {
	return &GatewayService{
		postRepo:  postRepo,
		fieldRepo: fieldRepo,
		searcher:  searcher,
		uploader:  uploader,
		log:       log,
		metrics:   metrics,
	}
}

// decorate attaches the post's field map. A post handed out by any read path
// always carries a non-nil map, even when the field store has nothing or the
// lookup fails.
func (s *GatewayService) decorate(ctx context.Context, post *model.Post) {
	fields, err := s.fieldRepo.GetByPost(ctx, post.ID)
	if err != nil {
		s.log.Warn("Failed to load fields for post",
			slog.Int64("id", post.ID),
			slog.String("error", err.Error()))
		fields = model.FieldMap{}
	}
	if fields == nil {
		fields = model.FieldMap{}
	}
	post.Fields = fields
}

func (s *GatewayService) decorateAll(ctx context.Context, posts []*model.Post) {
	for _, post := range posts {
		s.decorate(ctx, post)
	}
}

func (s *GatewayService) GetPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	posts, err := s.postRepo.Query(ctx, query.WithDefaults())
	if err != nil {
		s.log.Error("Failed to query posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("get_posts", false)
		return nil, err
	}

	s.decorateAll(ctx, posts)
	s.metrics.IncrementPostOperations("get_posts", true)
	return posts, nil
}

func (s *GatewayService) SearchPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	posts, err := s.searcher.Search(ctx, query.WithDefaults())
	if err != nil {
		s.log.Error("Failed to search posts",
			slog.String("search", query.Search),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("search_posts", false)
		return nil, err
	}

	s.decorateAll(ctx, posts)
	s.metrics.IncrementPostOperations("search_posts", true)
	return posts, nil
}

func (s *GatewayService) GetPost(ctx context.Context, query model.PostQuery) (*model.Post, error) {
	one := 1
	query.Limit = &one

	posts, err := s.postRepo.Query(ctx, query.WithDefaults())
	if err != nil {
		s.log.Error("Failed to query post", slog.String("error", err.Error()))
		return nil, err
	}
	if len(posts) == 0 {
		s.log.Debug("No post matched query")
		return nil, custom_errors.ErrPostNotFound
	}

	s.decorate(ctx, posts[0])
	return posts[0], nil
}

func (s *GatewayService) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	s.decorate(ctx, post)
	return post, nil
}

// UpdateFields writes fields in sorted key order. A failing key is logged and
// skipped; the remaining keys are still written and no error is reported.
func (s *GatewayService) UpdateFields(ctx context.Context, postID int64, fields model.FieldMap) error {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := s.fieldRepo.Update(ctx, postID, key, fields[key]); err != nil {
			s.log.Warn("Failed to update field",
				slog.Int64("post_id", postID),
				slog.String("key", key),
				slog.String("error", err.Error()))
			s.metrics.IncrementFieldOperations("update", false)
			continue
		}
		s.metrics.IncrementFieldOperations("update", true)
	}
	return nil
}

func (s *GatewayService) InsertPost(ctx context.Context, post *model.CreatePostDTO, fields model.FieldMap) (int64, error) {
	dto := *post
	if dto.Type == "" {
		dto.Type = "post"
	}
	if dto.Status == "" {
		dto.Status = model.PostStatusPublish
	}

	created, err := s.postRepo.Insert(ctx, &dto)
	if err != nil {
		s.log.Error("Failed to insert post", slog.String("title", post.Title), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("insert", false)
		return 0, err
	}
	s.metrics.IncrementPostOperations("insert", true)

	if len(fields) > 0 {
		// Field failures after a successful insert are absorbed.
		_ = s.UpdateFields(ctx, created.ID, fields)
	}

	return created.ID, nil
}

func (s *GatewayService) DeletePost(ctx context.Context, id int64, opts model.DeleteOptions) error {
	if opts.DeleteAttachments {
		if err := s.DeleteAttachments(ctx, id, opts.Soft); err != nil {
			s.log.Error("Aborting post deletion, attachment cleanup failed",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrAttachmentDeleteFailed
		}
	}

	if err := s.postRepo.Delete(ctx, id, opts.Soft); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			s.metrics.IncrementPostOperations("delete", false)
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrPostDeleteFailed
	}

	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

func (s *GatewayService) DeleteAttachments(ctx context.Context, postID int64, soft bool) error {
	attachments, err := s.postRepo.Query(ctx, model.PostQuery{
		Type:     model.PostTypeAttachment,
		Status:   model.PostStatusAny,
		ParentID: &postID,
	})
	if err != nil {
		s.log.Error("Failed to query attachments",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDeleteFailed
	}

	// Every attachment is attempted; a single failure flips the aggregate
	// result but does not stop the loop.
	failed := false
	for _, attachment := range attachments {
		if err := s.uploader.DeleteAttachment(ctx, attachment.ID, soft); err != nil {
			s.log.Warn("Failed to delete attachment",
				slog.Int64("attachment_id", attachment.ID),
				slog.Int64("post_id", postID),
				slog.String("error", err.Error()))
			s.metrics.IncrementUploadOperations("delete_attachment", false)
			failed = true
			continue
		}
		s.metrics.IncrementUploadOperations("delete_attachment", true)
	}

	if failed {
		return custom_errors.ErrAttachmentDeleteFailed
	}
	return nil
}

func (s *GatewayService) AttachUpload(ctx context.Context, postID int64, file model.UploadedFile, customField string) (int64, error) {
	attachment, err := s.uploader.Upload(ctx, postID, file)
	if err != nil {
		s.log.Debug("Upload failed",
			slog.Int64("post_id", postID),
			slog.String("name", file.Name),
			slog.String("error", err.Error()))
		s.metrics.IncrementUploadOperations("attach", false)
		return 0, custom_errors.ErrUploadFailed
	}
	s.metrics.IncrementUploadOperations("attach", true)

	if customField != "" {
		if err := s.fieldRepo.Update(ctx, postID, customField, attachment.URL); err != nil {
			s.log.Warn("Failed to write attachment URL field",
				slog.Int64("post_id", postID),
				slog.String("field", customField),
				slog.String("error", err.Error()))
		}
	}

	return attachment.ID, nil
}

func (s *GatewayService) AttachUploads(ctx context.Context, postID int64, fileKey string, files model.FileSet) ([]model.UploadResult, error) {
	if len(files) == 0 {
		return nil, custom_errors.ErrNoFilesUploaded
	}
	entries, ok := files[fileKey]
	if !ok {
		return nil, custom_errors.ErrFileKeyNotFound
	}

	if len(entries) == 1 {
		id, err := s.AttachUpload(ctx, postID, entries[0], "")
		result := model.UploadResult{Name: entries[0].Name, Success: err == nil}
		if err == nil {
			result.ID = &id
		}
		return []model.UploadResult{result}, nil
	}

	results := make([]model.UploadResult, 0, len(entries))
	for _, file := range entries {
		// Empty optional slots in multi-file forms are dropped silently.
		if file.Err == model.UploadErrNoFile {
			continue
		}
		if file.Err != model.UploadErrNone {
			results = append(results, model.UploadResult{Name: file.Name, Success: false})
			s.metrics.IncrementUploadOperations("attach", false)
			continue
		}

		attachment, err := s.uploader.Upload(ctx, postID, file)
		if err != nil {
			s.log.Debug("Batch upload item failed",
				slog.Int64("post_id", postID),
				slog.String("name", file.Name),
				slog.String("error", err.Error()))
			results = append(results, model.UploadResult{Name: file.Name, Success: false})
			s.metrics.IncrementUploadOperations("attach", false)
			continue
		}

		id := attachment.ID
		results = append(results, model.UploadResult{Name: file.Name, Success: true, ID: &id})
		s.metrics.IncrementUploadOperations("attach", true)
	}

	return results, nil
}
