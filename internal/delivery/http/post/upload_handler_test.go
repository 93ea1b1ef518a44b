package post_http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/model"
	gateway_mock "github.com/quantity-digital/qd-post/mocks/gateway"
)

func multipartBody(t *testing.T, fieldName string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile(fieldName, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_AttachUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		gateway.On("AttachUpload", mock.Anything, int64(5), mock.MatchedBy(func(f model.UploadedFile) bool {
			return f.Name == "photo.jpg" && f.Size == int64(len("image bytes")) &&
				f.Content != nil && f.Err == model.UploadErrNone
		}), "hero_image").Return(int64(31), nil)

		body, contentType := multipartBody(t, "file", map[string]string{"photo.jpg": "image bytes"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments?field=hero_image", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(31), resp.ID)
		gateway.AssertExpectations(t)
	})

	t.Run("Missing file part", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		body, contentType := multipartBody(t, "other", map[string]string{"photo.jpg": "x"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		gateway.AssertNotCalled(t, "AttachUpload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload failure", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		gateway.On("AttachUpload", mock.Anything, int64(5), mock.Anything, "").
			Return(int64(0), custom_errors.ErrUploadFailed)

		body, contentType := multipartBody(t, "file", map[string]string{"photo.jpg": "x"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Not multipart", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments", bytes.NewReader([]byte("raw"))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadHandler_AttachUploads(t *testing.T) {
	t.Run("Batch under the default key", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		id := int64(41)
		gateway.On("AttachUploads", mock.Anything, int64(5), "files", mock.MatchedBy(func(fs model.FileSet) bool {
			return len(fs["files"]) == 2
		})).Return([]model.UploadResult{
			{Name: "a.png", Success: true, ID: &id},
			{Name: "b.png", Success: false},
		}, nil)

		body, contentType := multipartBody(t, "files", map[string]string{"a.png": "aaa", "b.png": "bbb"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments/batch", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var results []model.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		require.Len(t, results, 2)
		assert.True(t, results[0].Success)
		assert.False(t, results[1].Success)
		gateway.AssertExpectations(t)
	})

	t.Run("Custom key parameter", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		gateway.On("AttachUploads", mock.Anything, int64(5), "gallery", mock.Anything).
			Return([]model.UploadResult{}, nil)

		body, contentType := multipartBody(t, "gallery", map[string]string{"a.png": "aaa"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments/batch?key=gallery", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		gateway.AssertExpectations(t)
	})

	t.Run("No files uploaded", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		gateway.On("AttachUploads", mock.Anything, int64(5), "files", mock.Anything).
			Return(nil, custom_errors.ErrNoFilesUploaded)

		body, contentType := multipartBody(t, "unused", map[string]string{})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments/batch", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Wrong file key", func(t *testing.T) {
		gateway := new(gateway_mock.Service)
		router := setupRouter(gateway)

		gateway.On("AttachUploads", mock.Anything, int64(5), "files", mock.Anything).
			Return(nil, custom_errors.ErrFileKeyNotFound)

		body, contentType := multipartBody(t, "gallery", map[string]string{"a.png": "aaa"})
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/5/attachments/batch", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
