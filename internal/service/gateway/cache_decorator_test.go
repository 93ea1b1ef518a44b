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
	cache_mock "github.com/quantity-digital/qd-post/mocks/cache"
	gateway_mock "github.com/quantity-digital/qd-post/mocks/gateway"
)

func setupDecoratorTest() (Service, *gateway_mock.Service, *cache_mock.PostCache) {
	log := logger.New("test")
	inner := new(gateway_mock.Service)
	postCache := new(cache_mock.PostCache)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	return NewGatewayCacheDecorator(inner, postCache, log, metrics), inner, postCache
}

func TestGatewayCacheDecorator_GetPostByID(t *testing.T) {
	t.Run("Cache hit skips the inner service", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		cached := &model.Post{ID: 1, Title: "Cached", Fields: model.FieldMap{}}
		postCache.On("GetPost", mock.Anything, int64(1)).Return(cached, nil)

		post, err := decorated.GetPostByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, cached, post)
		inner.AssertNotCalled(t, "GetPostByID", mock.Anything, mock.Anything)
	})

	t.Run("Cache miss loads and stores the post", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		loaded := &model.Post{ID: 2, Title: "Loaded", Fields: model.FieldMap{}}
		postCache.On("GetPost", mock.Anything, int64(2)).Return(nil, custom_errors.ErrCacheMiss)
		inner.On("GetPostByID", mock.Anything, int64(2)).Return(loaded, nil)
		postCache.On("SetPost", mock.Anything, loaded).Return(nil)

		post, err := decorated.GetPostByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, loaded, post)
		postCache.AssertExpectations(t)
	})

	t.Run("Inner service error is not cached", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		postCache.On("GetPost", mock.Anything, int64(3)).Return(nil, custom_errors.ErrCacheMiss)
		inner.On("GetPostByID", mock.Anything, int64(3)).Return(nil, custom_errors.ErrPostNotFound)

		post, err := decorated.GetPostByID(context.Background(), 3)

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		assert.Nil(t, post)
		postCache.AssertNotCalled(t, "SetPost", mock.Anything, mock.Anything)
	})
}

func TestGatewayCacheDecorator_Invalidation(t *testing.T) {
	t.Run("UpdateFields invalidates the post", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		fields := model.FieldMap{"color": "blue"}
		inner.On("UpdateFields", mock.Anything, int64(4), fields).Return(nil)
		postCache.On("DeletePost", mock.Anything, int64(4)).Return(nil)

		err := decorated.UpdateFields(context.Background(), 4, fields)

		assert.NoError(t, err)
		postCache.AssertExpectations(t)
	})

	t.Run("DeletePost invalidates only on success", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		inner.On("DeletePost", mock.Anything, int64(5), model.DeleteOptions{}).Return(custom_errors.ErrPostNotFound)

		err := decorated.DeletePost(context.Background(), 5, model.DeleteOptions{})

		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		postCache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})

	t.Run("AttachUpload invalidates the parent when a custom field was written", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		file := model.UploadedFile{Name: "photo.jpg", Size: 10}
		inner.On("AttachUpload", mock.Anything, int64(6), file, "hero_image").Return(int64(7), nil)
		postCache.On("DeletePost", mock.Anything, int64(6)).Return(nil)

		id, err := decorated.AttachUpload(context.Background(), 6, file, "hero_image")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		postCache.AssertExpectations(t)
	})

	t.Run("AttachUpload without a custom field leaves the cache alone", func(t *testing.T) {
		decorated, inner, postCache := setupDecoratorTest()

		file := model.UploadedFile{Name: "photo.jpg", Size: 10}
		inner.On("AttachUpload", mock.Anything, int64(6), file, "").Return(int64(7), nil)

		_, err := decorated.AttachUpload(context.Background(), 6, file, "")

		require.NoError(t, err)
		postCache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
	})
}
