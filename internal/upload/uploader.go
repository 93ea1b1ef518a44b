package upload

import (
	"context"
	"errors"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
	field_repository "github.com/quantity-digital/qd-post/internal/repository/field"
	post_repository "github.com/quantity-digital/qd-post/internal/repository/post"
	"github.com/quantity-digital/qd-post/internal/storage"
)

type FileUploader struct {
	store       storage.Backend
	postRepo    post_repository.Repository
	fieldRepo   field_repository.Repository
	publicURL   string
	maxFileSize int64
	log         *logger.Logger
}

func NewFileUploader(
	store storage.Backend,
	postRepo post_repository.Repository,
	fieldRepo field_repository.Repository,
	publicURL string,
	maxFileSize int64,
	log *logger.Logger,
) *FileUploader {
	return &FileUploader{
		store:       store,
		postRepo:    postRepo,
		fieldRepo:   fieldRepo,
		publicURL:   strings.TrimRight(publicURL, "/"),
		maxFileSize: maxFileSize,
		log:         log,
	}
}

func (u *FileUploader) validate(file model.UploadedFile) error {
	if file.Err != model.UploadErrNone {
		u.log.Debug("Rejecting file with upload error",
			slog.String("name", file.Name),
			slog.String("upload_error", file.Err.String()))
		return custom_errors.ErrUploadFailed
	}
	if file.Name == "" || file.Content == nil {
		return custom_errors.ErrUploadFailed
	}
	if file.Size <= 0 {
		return custom_errors.ErrUploadFailed
	}
	if u.maxFileSize > 0 && file.Size > u.maxFileSize {
		u.log.Debug("Rejecting oversized file",
			slog.String("name", file.Name),
			slog.Int64("size", file.Size),
			slog.Int64("max", u.maxFileSize))
		return custom_errors.ErrUploadFailed
	}
	return nil
}

func (u *FileUploader) Upload(ctx context.Context, parentID int64, file model.UploadedFile) (*model.Attachment, error) {
	if err := u.validate(file); err != nil {
		return nil, err
	}

	objectKey := uuid.New().String() + strings.ToLower(path.Ext(file.Name))

	if err := u.store.Upload(ctx, objectKey, file.Content); err != nil {
		u.log.Error("Failed to store uploaded file",
			slog.String("name", file.Name),
			slog.String("object_key", objectKey),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrUploadFailed
	}

	post, err := u.postRepo.Insert(ctx, &model.CreatePostDTO{
		Type:     model.PostTypeAttachment,
		Status:   model.PostStatusInherit,
		Title:    file.Name,
		ParentID: &parentID,
	})
	if err != nil {
		u.log.Error("Failed to create attachment post",
			slog.String("name", file.Name),
			slog.String("error", err.Error()))
		if delErr := u.store.Delete(ctx, objectKey); delErr != nil {
			u.log.Warn("Failed to remove orphaned blob",
				slog.String("object_key", objectKey),
				slog.String("error", delErr.Error()))
		}
		return nil, custom_errors.ErrUploadFailed
	}

	url := u.publicURL + "/" + objectKey

	meta := map[string]any{
		model.FieldAttachedFile: objectKey,
		model.FieldMimeType:     file.ContentType,
		model.FieldFileSize:     file.Size,
		model.FieldURL:          url,
	}
	for key, value := range meta {
		if err := u.fieldRepo.Update(ctx, post.ID, key, value); err != nil {
			u.log.Warn("Failed to write attachment meta field",
				slog.Int64("attachment_id", post.ID),
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	return &model.Attachment{
		ID:        post.ID,
		ParentID:  parentID,
		FileName:  file.Name,
		MimeType:  file.ContentType,
		Size:      file.Size,
		ObjectKey: objectKey,
		URL:       url,
	}, nil
}

func (u *FileUploader) DeleteAttachment(ctx context.Context, id int64, soft bool) error {
	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrAttachmentNotFound
		}
		u.log.Error("Failed to get attachment post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDeleteFailed
	}
	if post.Type != model.PostTypeAttachment {
		u.log.Debug("Post is not an attachment", slog.Int64("id", id), slog.String("type", post.Type))
		return custom_errors.ErrAttachmentNotFound
	}

	if soft {
		if err := u.postRepo.Delete(ctx, id, true); err != nil {
			u.log.Error("Failed to trash attachment", slog.Int64("id", id), slog.String("error", err.Error()))
			return custom_errors.ErrAttachmentDeleteFailed
		}
		return nil
	}

	fields, err := u.fieldRepo.GetByPost(ctx, id)
	if err != nil {
		u.log.Error("Failed to load attachment fields", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDeleteFailed
	}

	if objectKey, ok := fields[model.FieldAttachedFile].(string); ok && objectKey != "" {
		err := u.store.Delete(ctx, objectKey)
		if err != nil && !errors.Is(err, custom_errors.ErrObjectNotFound) {
			u.log.Error("Failed to delete attachment blob",
				slog.Int64("id", id),
				slog.String("object_key", objectKey),
				slog.String("error", err.Error()))
			return custom_errors.ErrAttachmentDeleteFailed
		}
	}

	if err := u.fieldRepo.DeleteByPost(ctx, id); err != nil {
		u.log.Error("Failed to delete attachment fields", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDeleteFailed
	}

	if err := u.postRepo.Delete(ctx, id, false); err != nil {
		u.log.Error("Failed to delete attachment post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrAttachmentDeleteFailed
	}
	return nil
}
