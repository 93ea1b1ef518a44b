package post_http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/render"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

const defaultBatchKey = "files"

type AttachmentUploader interface {
	AttachUpload(ctx context.Context, postID int64, file model.UploadedFile, customField string) (int64, error)
	AttachUploads(ctx context.Context, postID int64, fileKey string, files model.FileSet) ([]model.UploadResult, error)
}

type UploadHandler struct {
	gateway     AttachmentUploader
	maxFileSize int64
	log         *logger.Logger
}

func NewUploadHandler(gateway AttachmentUploader, maxFileSize int64, log *logger.Logger) *UploadHandler {
	return &UploadHandler{gateway: gateway, maxFileSize: maxFileSize, log: log}
}

type AttachUploadResponse struct {
	ID int64 `json:"id"`
}

// AttachUpload stores the multipart part named "file" as an attachment of the
// post. The optional ?field= parameter names a custom field on the parent that
// receives the attachment URL.
func (h *UploadHandler) AttachUpload(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	files, closeAll, err := h.parseUploads(r)
	if err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}
	defer closeAll()

	entries := files["file"]
	if len(entries) == 0 {
		http.Error(w, "missing 'file' part", http.StatusBadRequest)
		return
	}

	attachmentID, err := h.gateway.AttachUpload(r.Context(), id, entries[0], r.URL.Query().Get("field"))
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		h.log.Error("Failed to attach upload",
			slog.Int64("post_id", id),
			slog.String("file", entries[0].Name),
			slog.String("error", err.Error()))
		http.Error(w, "upload failed", http.StatusInternalServerError)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, AttachUploadResponse{ID: attachmentID})
}

// AttachUploads processes every file submitted under the ?key= part name,
// "files" by default, and reports one result per file.
func (h *UploadHandler) AttachUploads(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	fileKey := r.URL.Query().Get("key")
	if fileKey == "" {
		fileKey = defaultBatchKey
	}

	files, closeAll, err := h.parseUploads(r)
	if err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}
	defer closeAll()

	results, err := h.gateway.AttachUploads(r.Context(), id, fileKey, files)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrNoFilesUploaded):
			http.Error(w, "no files uploaded", http.StatusBadRequest)
		case errors.Is(err, custom_errors.ErrFileKeyNotFound):
			http.Error(w, "file key not found", http.StatusBadRequest)
		default:
			h.log.Error("Failed to attach uploads",
				slog.Int64("post_id", id),
				slog.String("file_key", fileKey),
				slog.String("error", err.Error()))
			http.Error(w, "upload failed", http.StatusInternalServerError)
		}
		return
	}

	render.JSON(w, r, results)
}

// parseUploads builds a FileSet from the request's multipart form. Oversized
// and unopenable parts are kept with their error recorded so the gateway can
// report them per file instead of rejecting the whole batch.
func (h *UploadHandler) parseUploads(r *http.Request) (model.FileSet, func(), error) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		return nil, nil, err
	}

	var opened []io.Closer
	closeAll := func() {
		for _, c := range opened {
			_ = c.Close()
		}
	}

	files := make(model.FileSet)
	for key, headers := range r.MultipartForm.File {
		entries := make([]model.UploadedFile, 0, len(headers))
		for _, header := range headers {
			entries = append(entries, h.openPart(header, &opened))
		}
		files[key] = entries
	}
	return files, closeAll, nil
}

func (h *UploadHandler) openPart(header *multipart.FileHeader, opened *[]io.Closer) model.UploadedFile {
	file := model.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	// Browsers submit an empty part for file inputs left blank.
	if header.Filename == "" && header.Size == 0 {
		file.Err = model.UploadErrNoFile
		return file
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		file.Err = model.UploadErrTooLarge
		return file
	}

	part, err := header.Open()
	if err != nil {
		h.log.Warn("Failed to open multipart file",
			slog.String("file", header.Filename),
			slog.String("error", err.Error()))
		file.Err = model.UploadErrFailed
		return file
	}
	*opened = append(*opened, part)
	file.Content = part
	return file
}
