package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64, opts model.DeleteOptions) error
}

type DeletePostHandler struct {
	gateway  PostDeleter
	validate *validator.Validate
	log      *logger.Logger
}

func NewDeletePostHandler(gateway PostDeleter, validate *validator.Validate, log *logger.Logger) *DeletePostHandler {
	return &DeletePostHandler{gateway: gateway, validate: validate, log: log}
}

type DeletePostRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&DeletePostRequestInternal{PostID: id}); err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	// Soft deletion is the default; ?soft=false makes it permanent.
	opts := model.DeleteOptions{Soft: true}
	if r.URL.Query().Get("soft") == "false" {
		opts.Soft = false
	}
	if r.URL.Query().Get("attachments") == "true" {
		opts.DeleteAttachments = true
	}

	if err := h.gateway.DeletePost(r.Context(), id, opts); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		case errors.Is(err, custom_errors.ErrAttachmentDeleteFailed):
			h.log.Error("Attachment cleanup failed", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "attachment cleanup failed", http.StatusInternalServerError)
		default:
			h.log.Error("Failed to delete post", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "failed to delete post", http.StatusInternalServerError)
		}
		return
	}

	render.JSON(w, r, map[string]string{"status": "deleted"})
}
