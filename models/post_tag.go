package models

import "github.com/google/uuid"

// PostTag is the posts<->tags link table. Rows are always replaced wholesale
// when a post's tag set changes, never diffed.
type PostTag struct {
	PostID uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;primaryKey;not null"`
	TagID  uuid.UUID `json:"tagId" db:"tag_id" gorm:"type:uuid;primaryKey;not null"`
}

// TableName keeps the join table name in sync with the Post many2many tag.
func (PostTag) TableName() string {
	return "post_tags"
}
