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

type FieldUpdater interface {
	UpdateFields(ctx context.Context, postID int64, fields model.FieldMap) error
}

type UpdateFieldsHandler struct {
	gateway  FieldUpdater
	validate *validator.Validate
	log      *logger.Logger
}

func NewUpdateFieldsHandler(gateway FieldUpdater, validate *validator.Validate, log *logger.Logger) *UpdateFieldsHandler {
	return &UpdateFieldsHandler{gateway: gateway, validate: validate, log: log}
}

type UpdateFieldsRequest struct {
	Fields model.FieldMap `json:"fields"`
}

type UpdateFieldsRequestInternal struct {
	PostID int64 `validate:"required,gt=0"`
}

func (h *UpdateFieldsHandler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&UpdateFieldsRequestInternal{PostID: id}); err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var req UpdateFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Fields) == 0 {
		http.Error(w, "no fields supplied", http.StatusBadRequest)
		return
	}

	if err := h.gateway.UpdateFields(r.Context(), id, req.Fields); err != nil {
		h.log.Error("Failed to update fields", slog.Int64("id", id), slog.String("error", err.Error()))
		http.Error(w, "failed to update fields", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, map[string]string{"status": "updated"})
}
