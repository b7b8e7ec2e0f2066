package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatus controls public visibility after moderation.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// Comment is a reader comment on a post. New comments always start as
// pending and only show up publicly once moderated to approved.
type Comment struct {
	ID        uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PostID    uuid.UUID     `json:"postId" db:"post_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID     `json:"userId" db:"user_id" gorm:"type:uuid;not null;index"`
	ParentID  *uuid.UUID    `json:"parentId,omitempty" db:"parent_id" gorm:"type:uuid;index"`
	Content   string        `json:"content" db:"content" gorm:"type:text;not null"`
	Status    CommentStatus `json:"status" db:"status" gorm:"type:text;not null;default:'pending';index"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Post   *Post    `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID"`
	User   *User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Parent *Comment `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
}
