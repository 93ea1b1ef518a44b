package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
	"github.com/quantity-digital/qd-post/internal/repository/postgres"
)

type PostRepository struct {
	log *logger.Logger
	db  postgres.PgDB
}

func NewPostRepository(db postgres.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

const postColumns = `id, type, status, title, content, parent_id, created_at, updated_at`

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Type,
		&post.Status,
		&post.Title,
		&post.Content,
		&post.ParentID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}

func (p *PostRepository) Query(ctx context.Context, query model.PostQuery) ([]*model.Post, error) {
	args := pgx.NamedArgs{}
	baseQuery := `SELECT ` + postColumns + ` FROM posts`

	whereClauses := []string{}

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

	if len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	baseQuery += " ORDER BY created_at DESC"

	if query.Limit != nil {
		baseQuery += " LIMIT @limit"
		args["limit"] = *query.Limit
	}
	if query.Offset != nil {
		baseQuery += " OFFSET @offset"
		args["offset"] = *query.Offset
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.log.Error("Error querying posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post during Query", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during Query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Insert(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"type":       post.Type,
		"status":     post.Status,
		"title":      post.Title,
		"content":    post.Content,
		"parent_id":  post.ParentID,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (type, status, title, content, parent_id, created_at, updated_at)
		VALUES (@type, @status, @title, @content, @parent_id, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.log.Error("Error inserting post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64, soft bool) error {
	args := pgx.NamedArgs{"id": id}

	var query string
	if soft {
		args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}
		query = `UPDATE posts SET status = 'trash', updated_at = @updated_at WHERE id = @id`
	} else {
		query = `DELETE FROM posts WHERE id = @id`
	}

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.Bool("soft", soft), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}
