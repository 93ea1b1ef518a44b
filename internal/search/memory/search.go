package memory

import (
	"context"
	"strings"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
	post_memory "github.com/quantity-digital/qd-post/internal/repository/post/memory"
)

// Searcher is a substring-matching stand-in for the full-text engine, backed
// by the in-memory post repository.
type Searcher struct {
	posts *post_memory.PostRepository
	log   *logger.Logger
}

func NewSearcher(posts *post_memory.PostRepository, log *logger.Logger) *Searcher {
	return &Searcher{posts: posts, log: log}
}

func (s *Searcher) Search(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	limit := query.Limit
	offset := query.Offset
	query.Limit = nil
	query.Offset = nil

	candidates, err := s.posts.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query.Search)
	var result []*model.Post
	for _, post := range candidates {
		haystack := strings.ToLower(post.Title)
		if post.Content != nil {
			haystack += " " + strings.ToLower(*post.Content)
		}
		if needle == "" || strings.Contains(haystack, needle) {
			result = append(result, post)
		}
	}

	if offset != nil {
		if *offset >= len(result) {
			return []*model.Post{}, nil
		}
		result = result[*offset:]
	}
	if limit != nil && *limit < len(result) {
		result = result[:*limit]
	}

	return result, nil
}
