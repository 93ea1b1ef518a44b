package memory

import (
	"context"
	"sync"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type FieldRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	fields map[int64]model.FieldMap
}

func NewFieldRepository(log *logger.Logger) *FieldRepository {
	return &FieldRepository{
		log:    log,
		fields: make(map[int64]model.FieldMap),
	}
}

func (f *FieldRepository) GetByPost(ctx context.Context, postID int64) (model.FieldMap, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := model.FieldMap{}
	for key, value := range f.fields[postID] {
		result[key] = value
	}
	return result, nil
}

func (f *FieldRepository) Update(ctx context.Context, postID int64, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fields[postID] == nil {
		f.fields[postID] = model.FieldMap{}
	}
	f.fields[postID][key] = value
	return nil
}

// DeleteByPost drops every field stored for the post. Used when an attachment
// post is hard-deleted.
func (f *FieldRepository) DeleteByPost(ctx context.Context, postID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.fields, postID)
	return nil
}
