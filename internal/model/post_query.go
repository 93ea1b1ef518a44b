package model

// PostQuery describes a post store lookup. Zero values stand for "caller did
// not supply": WithDefaults fills those in, caller-supplied values always win.
type PostQuery struct {
	Type     string
	Status   string
	Search   string
	ParentID *int64
	Limit    *int
	Offset   *int
}

// WithDefaults returns a copy with the gateway defaults applied: unspecified
// Type matches every post type, unspecified Status matches published posts
// only. "any" disables the respective filter entirely.
func (q PostQuery) WithDefaults() PostQuery {
	if q.Type == "" {
		q.Type = PostTypeAny
	}
	if q.Status == "" {
		q.Status = PostStatusPublish
	}
	return q
}
