package search

import (
	"context"

	"github.com/quantity-digital/qd-post/internal/model"
)

//go:generate mockery --name Searcher --dir . --output ../../mocks/search --outpkg mocks --filename Searcher.go
type Searcher interface {
	// Search runs a full-text query over posts. The query contract is the
	// same as the generic post query, with query.Search as the search text.
	Search(ctx context.Context, query model.PostQuery) ([]*model.Post, error)
}
