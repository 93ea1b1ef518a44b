package model

import "github.com/jackc/pgx/v5/pgtype"

const (
	PostTypeAny        = "any"
	PostTypeAttachment = "attachment"

	PostStatusAny     = "any"
	PostStatusPublish = "publish"
	PostStatusDraft   = "draft"
	PostStatusInherit = "inherit"
	PostStatusTrash   = "trash"
)

type Post struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"`
	Status    string             `json:"status"`
	Title     string             `json:"title"`
	Content   *string            `json:"content,omitempty"`
	ParentID  *int64             `json:"parent_id,omitempty"`
	Fields    FieldMap           `json:"fields"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
