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

type PostGetter interface {
	GetPost(ctx context.Context, query model.PostQuery) (*model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
}

type GetPostHandler struct {
	gateway  PostGetter
	validate *validator.Validate
	log      *logger.Logger
}

func NewGetPostHandler(gateway PostGetter, validate *validator.Validate, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{gateway: gateway, validate: validate, log: log}
}

type GetPostRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *GetPostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&GetPostRequestInternal{PostID: id}); err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.gateway.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to get post", slog.Int64("id", id), slog.String("error", err.Error()))
		http.Error(w, "failed to get post", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, post)
}

// GetFirstPost returns the first match of the query; the gateway forces the
// result count to one.
func (h *GetPostHandler) GetFirstPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.gateway.GetPost(r.Context(), queryFromRequest(r))
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to get first post", slog.String("error", err.Error()))
		http.Error(w, "failed to get post", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, post)
}
