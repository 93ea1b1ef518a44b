package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type PostLister interface {
	GetPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
}

type ListPostsHandler struct {
	gateway PostLister
	log     *logger.Logger
}

func NewListPostsHandler(gateway PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{gateway: gateway, log: log}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.gateway.GetPosts(r.Context(), queryFromRequest(r))
	if err != nil {
		h.log.Error("Failed to list posts", slog.String("error", err.Error()))
		http.Error(w, "failed to list posts", http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	render.JSON(w, r, posts)
}
