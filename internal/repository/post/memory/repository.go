package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func matches(post *model.Post, query model.PostQuery) bool {
	if query.Type != "" && query.Type != model.PostTypeAny && post.Type != query.Type {
		return false
	}
	if query.Status != "" && query.Status != model.PostStatusAny && post.Status != query.Status {
		return false
	}
	if query.ParentID != nil && (post.ParentID == nil || *post.ParentID != *query.ParentID) {
		return false
	}
	return true
}

func (p *PostRepository) Query(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if !matches(post, query) {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Time.Equal(result[j].CreatedAt.Time) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.Time.After(result[j].CreatedAt.Time)
	})

	if query.Offset != nil {
		offset := *query.Offset
		if offset >= len(result) {
			return []*model.Post{}, nil
		}
		result = result[offset:]
	}
	if query.Limit != nil && *query.Limit < len(result) {
		result = result[:*query.Limit]
	}

	return result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Insert(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:        p.nextID,
		Type:      post.Type,
		Status:    post.Status,
		Title:     post.Title,
		Content:   post.Content,
		ParentID:  post.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64, soft bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return custom_errors.ErrPostNotFound
	}

	if soft {
		post.Status = model.PostStatusTrash
		post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
		return nil
	}

	delete(p.posts, id)
	return nil
}
