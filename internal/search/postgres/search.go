package search_postgres

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
	"github.com/quantity-digital/qd-post/internal/repository/postgres"
)

// Searcher runs full-text queries against the posts table using the generated
// tsvector column maintained by the schema migration.
type Searcher struct {
	log *logger.Logger
	db  postgres.PgDB
}

func NewSearcher(db postgres.PgDB, log *logger.Logger) *Searcher {
	return &Searcher{db: db, log: log}
}

func (s *Searcher) Search(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	args := pgx.NamedArgs{"search": query.Search}
	baseQuery := `
		SELECT id, type, status, title, content, parent_id, created_at, updated_at
		FROM posts`

	whereClauses := []string{"search_vector @@ websearch_to_tsquery('simple', @search)"}

	if query.Type != "" && query.Type != model.PostTypeAny {
		whereClauses = append(whereClauses, "type = @type")
		args["type"] = query.Type
	}
	if query.Status != "" && query.Status != model.PostStatusAny {
		whereClauses = append(whereClauses, "status = @status")
		args["status"] = query.Status
	}
	if query.ParentID != nil {
		whereClauses = append(whereClauses, "parent_id = @parent_id")
		args["parent_id"] = *query.ParentID
	}

	baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	baseQuery += " ORDER BY ts_rank(search_vector, websearch_to_tsquery('simple', @search)) DESC, created_at DESC"

	if query.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *query.Limit
	}
	if query.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *query.Offset
	}

	rows, err := s.db.Query(ctx, baseQuery, args)
	if err != nil {
		s.log.Error("Error searching posts", slog.String("search", query.Search), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post := &model.Post{}
		err := rows.Scan(
			&post.ID,
			&post.Type,
			&post.Status,
			&post.Title,
			&post.Content,
			&post.ParentID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			s.log.Error("Error scanning post during Search", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		s.log.Error("Error iterating rows during Search", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}
