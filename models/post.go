package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus controls post visibility.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

// Post represents a blog post. Content is stored HTML produced by the admin
// editor and served as-is.
type Post struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Content       string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt       *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	FeaturedImage *string    `json:"featuredImage,omitempty" db:"featured_image" gorm:"type:text"`
	AuthorID      uuid.UUID  `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty" db:"category_id" gorm:"type:uuid;index"`
	Status        PostStatus `json:"status" db:"status" gorm:"type:text;not null;default:'draft';index"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
	Views         int64      `json:"views" db:"views" gorm:"type:bigint;not null;default:0"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}
