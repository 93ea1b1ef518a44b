package model

type CreatePostDTO struct {
	Type     string  `json:"type"`
	Status   string  `json:"status"`
	Title    string  `json:"title"`
	Content  *string `json:"content,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
}
