package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type PostSearcher interface {
	SearchPosts(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
}

type SearchPostsHandler struct {
	gateway PostSearcher
	log     *logger.Logger
}

func NewSearchPostsHandler(gateway PostSearcher, log *logger.Logger) *SearchPostsHandler {
	return &SearchPostsHandler{gateway: gateway, log: log}
}

func (h *SearchPostsHandler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	query := queryFromRequest(r)
	if query.Search == "" {
		http.Error(w, "missing required 'q' parameter", http.StatusBadRequest)
		return
	}

	posts, err := h.gateway.SearchPosts(r.Context(), query)
	if err != nil {
		h.log.Error("Failed to search posts",
			slog.String("q", query.Search),
			slog.String("error", err.Error()))
		http.Error(w, "failed to search posts", http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	render.JSON(w, r, posts)
}
