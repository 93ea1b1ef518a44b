package field_repository_postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/quantity-digital/qd-post/internal/custom_errors"
	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/repository/postgres"

	"github.com/quantity-digital/qd-post/internal/model"
)

type FieldRepository struct {
	log *logger.Logger
	db  postgres.PgDB
}

func NewFieldRepository(db postgres.PgDB, log *logger.Logger) *FieldRepository {
	return &FieldRepository{db: db, log: log}
}

func (f *FieldRepository) GetByPost(ctx context.Context, postID int64) (model.FieldMap, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT key, value FROM post_fields WHERE post_id = @post_id`

	rows, err := f.db.Query(ctx, query, args)
	if err != nil {
		f.log.Error("Error querying fields", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	fields := model.FieldMap{}
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			f.log.Error("Error scanning field", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			f.log.Error("Error decoding field value",
				slog.Int64("post_id", postID),
				slog.String("key", key),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		fields[key] = value
	}

	if err = rows.Err(); err != nil {
		f.log.Error("Error iterating fields", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return fields, nil
}

func (f *FieldRepository) Update(ctx context.Context, postID int64, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		f.log.Error("Error encoding field value",
			slog.Int64("post_id", postID),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return custom_errors.ErrInvalidInput
	}

	args := pgx.NamedArgs{
		"post_id":    postID,
		"key":        key,
		"value":      raw,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `
		INSERT INTO post_fields (post_id, key, value, updated_at)
		VALUES (@post_id, @key, @value, @updated_at)
		ON CONFLICT (post_id, key) DO UPDATE SET value = @value, updated_at = @updated_at`

	if _, err := f.db.Exec(ctx, query, args); err != nil {
		f.log.Error("Error upserting field",
			slog.Int64("post_id", postID),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (f *FieldRepository) DeleteByPost(ctx context.Context, postID int64) error {
	args := pgx.NamedArgs{"post_id": postID}
	query := `DELETE FROM post_fields WHERE post_id = @post_id`

	if _, err := f.db.Exec(ctx, query, args); err != nil {
		f.log.Error("Error deleting fields", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}
