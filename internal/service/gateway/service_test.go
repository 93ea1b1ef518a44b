package gateway_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	prometheus_metrics "github.com/quantity-digital/qd-post/internal/metrics/prometheus"
	"github.com/quantity-digital/qd-post/internal/model"
	field_repository_mock "github.com/quantity-digital/qd-post/mocks/field"
	post_repository_mock "github.com/quantity-digital/qd-post/mocks/post"
	search_mock "github.com/quantity-digital/qd-post/mocks/search"
	upload_mock "github.com/quantity-digital/qd-post/mocks/upload"
)

func setupGatewayTest() (*GatewayService, *post_repository_mock.Repository, *field_repository_mock.Repository, *search_mock.Searcher, *upload_mock.Uploader) {
	log := logger.New("test")
	postRepo := new(post_repository_mock.Repository)
	fieldRepo := new(field_repository_mock.Repository)
	searcher := new(search_mock.Searcher)
	uploader := new(upload_mock.Uploader)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	svc := NewGatewayService(postRepo, fieldRepo, searcher, uploader, log, metrics)
	return svc, postRepo, fieldRepo, searcher, uploader
}

func TestGatewayService_GetPosts(t *testing.T) {
	t.Run("Defaults applied when type and status are empty", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("Query", mock.Anything, model.PostQuery{
			Type:   model.PostTypeAny,
			Status: model.PostStatusPublish,
		}).Return([]*model.Post{{ID: 1, Title: "First"}}, nil)
		fieldRepo.On("GetByPost", mock.Anything, int64(1)).Return(model.FieldMap{"color": "red"}, nil)

		posts, err := svc.GetPosts(context.Background(), model.PostQuery{})

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, model.FieldMap{"color": "red"}, posts[0].Fields)
		postRepo.AssertExpectations(t)
	})

	t.Run("Caller-supplied type wins over the default", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("Query", mock.Anything, model.PostQuery{
			Type:   "page",
			Status: model.PostStatusPublish,
		}).Return([]*model.Post{}, nil)

		_, err := svc.GetPosts(context.Background(), model.PostQuery{Type: "page"})

		require.NoError(t, err)
		postRepo.AssertExpectations(t)
		fieldRepo.AssertNotCalled(t, "GetByPost", mock.Anything, mock.Anything)
	})

	t.Run("Field lookup failure still yields a non-nil field map", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("Query", mock.Anything, mock.Anything).
			Return([]*model.Post{{ID: 2, Title: "Second"}}, nil)
		fieldRepo.On("GetByPost", mock.Anything, int64(2)).Return(nil, custom_errors.ErrDatabaseQuery)

		posts, err := svc.GetPosts(context.Background(), model.PostQuery{})

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.NotNil(t, posts[0].Fields)
		assert.Empty(t, posts[0].Fields)
	})

	t.Run("Query error is passed through", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Query", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		posts, err := svc.GetPosts(context.Background(), model.PostQuery{})

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Nil(t, posts)
	})
}

func TestGatewayService_SearchPosts(t *testing.T) {
	t.Run("Search text is preserved and defaults applied", func(t *testing.T) {
		svc, _, fieldRepo, searcher, _ := setupGatewayTest()

		searcher.On("Search", mock.Anything, model.PostQuery{
			Type:   model.PostTypeAny,
			Status: model.PostStatusPublish,
			Search: "summer sale",
		}).Return([]*model.Post{{ID: 3, Title: "Summer Sale"}}, nil)
		fieldRepo.On("GetByPost", mock.Anything, int64(3)).Return(model.FieldMap{}, nil)

		posts, err := svc.SearchPosts(context.Background(), model.PostQuery{Search: "summer sale"})

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.NotNil(t, posts[0].Fields)
		searcher.AssertExpectations(t)
	})

	t.Run("Search error is passed through", func(t *testing.T) {
		svc, _, _, searcher, _ := setupGatewayTest()

		searcher.On("Search", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		_, err := svc.SearchPosts(context.Background(), model.PostQuery{Search: "x"})

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestGatewayService_GetPost(t *testing.T) {
	t.Run("Limit is forced to one regardless of the caller value", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		ten := 10
		postRepo.On("Query", mock.Anything, mock.MatchedBy(func(q model.PostQuery) bool {
			return q.Limit != nil && *q.Limit == 1
		})).Return([]*model.Post{{ID: 4, Title: "Only"}}, nil)
		fieldRepo.On("GetByPost", mock.Anything, int64(4)).Return(model.FieldMap{}, nil)

		post, err := svc.GetPost(context.Background(), model.PostQuery{Limit: &ten})

		require.NoError(t, err)
		assert.Equal(t, int64(4), post.ID)
		postRepo.AssertExpectations(t)
	})

	t.Run("No match returns ErrPostNotFound", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Query", mock.Anything, mock.Anything).Return([]*model.Post{}, nil)

		post, err := svc.GetPost(context.Background(), model.PostQuery{Type: "page"})

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestGatewayService_GetPostByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("GetByID", mock.Anything, int64(5)).Return(&model.Post{ID: 5, Title: "Five"}, nil)
		fieldRepo.On("GetByPost", mock.Anything, int64(5)).Return(model.FieldMap{"a": float64(1)}, nil)

		post, err := svc.GetPostByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, model.FieldMap{"a": float64(1)}, post.Fields)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)

		post, err := svc.GetPostByID(context.Background(), 404)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestGatewayService_UpdateFields(t *testing.T) {
	t.Run("A failing key does not stop the remaining writes", func(t *testing.T) {
		svc, _, fieldRepo, _, _ := setupGatewayTest()

		fieldRepo.On("Update", mock.Anything, int64(7), "alpha", "a").Return(custom_errors.ErrFieldUpdateFailed)
		fieldRepo.On("Update", mock.Anything, int64(7), "beta", "b").Return(nil)
		fieldRepo.On("Update", mock.Anything, int64(7), "gamma", "c").Return(nil)

		err := svc.UpdateFields(context.Background(), 7, model.FieldMap{
			"alpha": "a",
			"beta":  "b",
			"gamma": "c",
		})

		assert.NoError(t, err)
		fieldRepo.AssertExpectations(t)
	})

	t.Run("Empty field map is a no-op", func(t *testing.T) {
		svc, _, fieldRepo, _, _ := setupGatewayTest()

		err := svc.UpdateFields(context.Background(), 7, model.FieldMap{})

		assert.NoError(t, err)
		fieldRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGatewayService_InsertPost(t *testing.T) {
	t.Run("Type and status default when unset", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("Insert", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.Type == "post" && dto.Status == model.PostStatusPublish
		})).Return(&model.Post{ID: 8, Title: "New"}, nil)
		fieldRepo.On("Update", mock.Anything, int64(8), "color", "red").Return(nil)

		id, err := svc.InsertPost(context.Background(), &model.CreatePostDTO{Title: "New"}, model.FieldMap{"color": "red"})

		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
		fieldRepo.AssertExpectations(t)
	})

	t.Run("Insert error reports no id", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Insert", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrDatabaseQuery)

		id, err := svc.InsertPost(context.Background(), &model.CreatePostDTO{Title: "New"}, nil)

		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
		assert.Zero(t, id)
	})

	t.Run("Field failures after a successful insert are absorbed", func(t *testing.T) {
		svc, postRepo, fieldRepo, _, _ := setupGatewayTest()

		postRepo.On("Insert", mock.Anything, mock.Anything).Return(&model.Post{ID: 9}, nil)
		fieldRepo.On("Update", mock.Anything, int64(9), "color", "red").Return(custom_errors.ErrFieldUpdateFailed)

		id, err := svc.InsertPost(context.Background(), &model.CreatePostDTO{Title: "New"}, model.FieldMap{"color": "red"})

		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
	})
}

func TestGatewayService_DeletePost(t *testing.T) {
	t.Run("Soft delete", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Delete", mock.Anything, int64(10), true).Return(nil)

		err := svc.DeletePost(context.Background(), 10, model.DeleteOptions{Soft: true})

		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})

	t.Run("Attachment cleanup failure aborts the post deletion", func(t *testing.T) {
		svc, postRepo, _, _, uploader := setupGatewayTest()

		parentID := int64(10)
		postRepo.On("Query", mock.Anything, model.PostQuery{
			Type:     model.PostTypeAttachment,
			Status:   model.PostStatusAny,
			ParentID: &parentID,
		}).Return([]*model.Post{{ID: 11, Type: model.PostTypeAttachment}}, nil)
		uploader.On("DeleteAttachment", mock.Anything, int64(11), false).Return(custom_errors.ErrAttachmentDeleteFailed)

		err := svc.DeletePost(context.Background(), 10, model.DeleteOptions{DeleteAttachments: true})

		assert.ErrorIs(t, err, custom_errors.ErrAttachmentDeleteFailed)
		postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing post", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Delete", mock.Anything, int64(404), false).Return(custom_errors.ErrPostNotFound)

		err := svc.DeletePost(context.Background(), 404, model.DeleteOptions{})

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("Repository failure maps to ErrPostDeleteFailed", func(t *testing.T) {
		svc, postRepo, _, _, _ := setupGatewayTest()

		postRepo.On("Delete", mock.Anything, int64(10), false).Return(custom_errors.ErrDatabaseQuery)

		err := svc.DeletePost(context.Background(), 10, model.DeleteOptions{})

		assert.ErrorIs(t, err, custom_errors.ErrPostDeleteFailed)
	})
}

func TestGatewayService_DeleteAttachments(t *testing.T) {
	t.Run("Every attachment is attempted even after a failure", func(t *testing.T) {
		svc, postRepo, _, _, uploader := setupGatewayTest()

		parentID := int64(20)
		postRepo.On("Query", mock.Anything, model.PostQuery{
			Type:     model.PostTypeAttachment,
			Status:   model.PostStatusAny,
			ParentID: &parentID,
		}).Return([]*model.Post{
			{ID: 21, Type: model.PostTypeAttachment},
			{ID: 22, Type: model.PostTypeAttachment},
			{ID: 23, Type: model.PostTypeAttachment},
		}, nil)
		uploader.On("DeleteAttachment", mock.Anything, int64(21), false).Return(nil)
		uploader.On("DeleteAttachment", mock.Anything, int64(22), false).Return(custom_errors.ErrAttachmentDeleteFailed)
		uploader.On("DeleteAttachment", mock.Anything, int64(23), false).Return(nil)

		err := svc.DeleteAttachments(context.Background(), 20, false)

		assert.ErrorIs(t, err, custom_errors.ErrAttachmentDeleteFailed)
		uploader.AssertExpectations(t)
	})

	t.Run("No attachments is a success", func(t *testing.T) {
		svc, postRepo, _, _, uploader := setupGatewayTest()

		postRepo.On("Query", mock.Anything, mock.Anything).Return([]*model.Post{}, nil)

		err := svc.DeleteAttachments(context.Background(), 20, false)

		assert.NoError(t, err)
		uploader.AssertNotCalled(t, "DeleteAttachment", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGatewayService_AttachUpload(t *testing.T) {
	file := model.UploadedFile{Name: "photo.jpg", ContentType: "image/jpeg", Size: 1024}

	t.Run("Success writes the URL into the custom field", func(t *testing.T) {
		svc, _, fieldRepo, _, uploader := setupGatewayTest()

		uploader.On("Upload", mock.Anything, int64(30), file).
			Return(&model.Attachment{ID: 31, URL: "http://cdn.local/photo.jpg"}, nil)
		fieldRepo.On("Update", mock.Anything, int64(30), "hero_image", "http://cdn.local/photo.jpg").Return(nil)

		id, err := svc.AttachUpload(context.Background(), 30, file, "hero_image")

		require.NoError(t, err)
		assert.Equal(t, int64(31), id)
		fieldRepo.AssertExpectations(t)
	})

	t.Run("No custom field write when the field name is empty", func(t *testing.T) {
		svc, _, fieldRepo, _, uploader := setupGatewayTest()

		uploader.On("Upload", mock.Anything, int64(30), file).
			Return(&model.Attachment{ID: 31, URL: "http://cdn.local/photo.jpg"}, nil)

		id, err := svc.AttachUpload(context.Background(), 30, file, "")

		require.NoError(t, err)
		assert.Equal(t, int64(31), id)
		fieldRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload failure maps to ErrUploadFailed", func(t *testing.T) {
		svc, _, _, _, uploader := setupGatewayTest()

		uploader.On("Upload", mock.Anything, int64(30), file).Return(nil, custom_errors.ErrUploadFailed)

		id, err := svc.AttachUpload(context.Background(), 30, file, "hero_image")

		assert.ErrorIs(t, err, custom_errors.ErrUploadFailed)
		assert.Zero(t, id)
	})

	t.Run("Field write failure is absorbed", func(t *testing.T) {
		svc, _, fieldRepo, _, uploader := setupGatewayTest()

		uploader.On("Upload", mock.Anything, int64(30), file).
			Return(&model.Attachment{ID: 31, URL: "http://cdn.local/photo.jpg"}, nil)
		fieldRepo.On("Update", mock.Anything, int64(30), "hero_image", "http://cdn.local/photo.jpg").
			Return(custom_errors.ErrFieldUpdateFailed)

		id, err := svc.AttachUpload(context.Background(), 30, file, "hero_image")

		require.NoError(t, err)
		assert.Equal(t, int64(31), id)
	})
}

func TestGatewayService_AttachUploads(t *testing.T) {
	t.Run("Empty file set", func(t *testing.T) {
		svc, _, _, _, _ := setupGatewayTest()

		results, err := svc.AttachUploads(context.Background(), 40, "files", model.FileSet{})

		assert.ErrorIs(t, err, custom_errors.ErrNoFilesUploaded)
		assert.Nil(t, results)
	})

	t.Run("Missing file key", func(t *testing.T) {
		svc, _, _, _, _ := setupGatewayTest()

		files := model.FileSet{"other": {{Name: "a.txt", Size: 1}}}

		results, err := svc.AttachUploads(context.Background(), 40, "files", files)

		assert.ErrorIs(t, err, custom_errors.ErrFileKeyNotFound)
		assert.Nil(t, results)
	})

	t.Run("Single file delegates without a custom field write", func(t *testing.T) {
		svc, _, fieldRepo, _, uploader := setupGatewayTest()

		file := model.UploadedFile{Name: "doc.pdf", Size: 2048}
		uploader.On("Upload", mock.Anything, int64(40), file).
			Return(&model.Attachment{ID: 41, URL: "http://cdn.local/doc.pdf"}, nil)

		results, err := svc.AttachUploads(context.Background(), 40, "files", model.FileSet{"files": {file}})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
		require.NotNil(t, results[0].ID)
		assert.Equal(t, int64(41), *results[0].ID)
		fieldRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Single file failure reports one unsuccessful result, not an error", func(t *testing.T) {
		svc, _, _, _, uploader := setupGatewayTest()

		file := model.UploadedFile{Name: "doc.pdf", Size: 2048}
		uploader.On("Upload", mock.Anything, int64(40), file).Return(nil, custom_errors.ErrUploadFailed)

		results, err := svc.AttachUploads(context.Background(), 40, "files", model.FileSet{"files": {file}})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Success)
		assert.Nil(t, results[0].ID)
	})

	t.Run("Empty optional slots are dropped from multi-file batches", func(t *testing.T) {
		svc, _, _, _, uploader := setupGatewayTest()

		first := model.UploadedFile{Name: "a.png", Size: 100}
		empty := model.UploadedFile{Err: model.UploadErrNoFile}
		third := model.UploadedFile{Name: "c.png", Size: 300}

		uploader.On("Upload", mock.Anything, int64(40), first).
			Return(&model.Attachment{ID: 42}, nil)
		uploader.On("Upload", mock.Anything, int64(40), third).
			Return(&model.Attachment{ID: 43}, nil)

		results, err := svc.AttachUploads(context.Background(), 40, "files", model.FileSet{
			"files": {first, empty, third},
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "a.png", results[0].Name)
		assert.Equal(t, "c.png", results[1].Name)
		uploader.AssertExpectations(t)
	})

	t.Run("A pre-classified error skips the upload for that file only", func(t *testing.T) {
		svc, _, _, _, uploader := setupGatewayTest()

		good := model.UploadedFile{Name: "ok.png", Size: 100}
		tooBig := model.UploadedFile{Name: "huge.bin", Size: 1 << 30, Err: model.UploadErrTooLarge}

		uploader.On("Upload", mock.Anything, int64(40), good).
			Return(&model.Attachment{ID: 44}, nil)

		results, err := svc.AttachUploads(context.Background(), 40, "files", model.FileSet{
			"files": {good, tooBig},
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Success)
		assert.False(t, results[1].Success)
		assert.Equal(t, "huge.bin", results[1].Name)
		uploader.AssertNotCalled(t, "Upload", mock.Anything, int64(40), tooBig)
	})
}
