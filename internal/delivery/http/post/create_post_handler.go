package post_http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type PostCreator interface {
	InsertPost(ctx context.Context, post *model.CreatePostDTO, fields model.FieldMap) (int64, error)
}

type CreatePostHandler struct {
	gateway  PostCreator
	validate *validator.Validate
	log      *logger.Logger
}

func NewCreatePostHandler(gateway PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{gateway: gateway, validate: validate, log: log}
}

type CreatePostRequest struct {
	Post   model.CreatePostDTO `json:"post"`
	Fields model.FieldMap      `json:"fields"`
}

type CreatePostRequestInternal struct {
	Title string `validate:"required"`
}

type CreatePostResponse struct {
	ID int64 `json:"id"`
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&CreatePostRequestInternal{Title: req.Post.Title}); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.gateway.InsertPost(r.Context(), &req.Post, req.Fields)
	if err != nil {
		h.log.Error("Failed to insert post", slog.String("title", req.Post.Title), slog.String("error", err.Error()))
		http.Error(w, "failed to insert post", http.StatusInternalServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, CreatePostResponse{ID: id})
}
