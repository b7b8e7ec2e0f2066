package database

import (
	"github.com/google/uuid"

	"github.com/rpupo63/personal-blog-backend/models"
)

// Store interfaces implemented by the GORM repositories. Handlers depend on
// these so tests can swap in mocks without a database.

type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Add(user *models.User) error
	PromoteByEmail(email string) error
}

type CategoryStore interface {
	FindAll() ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	Add(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

type TagStore interface {
	FindAll() ([]models.Tag, error)
	FindByID(id uuid.UUID) (*models.Tag, error)
	Add(tag *models.Tag) error
	Update(tag *models.Tag) error
	Delete(id uuid.UUID) error
}

type PostStore interface {
	FindPage(access Access, filter PostFilter, page Page) ([]models.Post, int64, error)
	FindByID(access Access, id uuid.UUID) (*models.Post, error)
	FindBySlug(access Access, slug string) (*models.Post, error)
	Add(post *models.Post, tagIDs []uuid.UUID) error
	Save(post *models.Post, tagIDs []uuid.UUID, replaceTags bool) error
	Delete(id uuid.UUID) error
	IncrementViews(id uuid.UUID)
}

type CommentStore interface {
	FindForPost(access Access, postID uuid.UUID) ([]models.Comment, error)
	FindPage(status *models.CommentStatus, page Page) ([]models.Comment, int64, error)
	FindByID(id uuid.UUID) (*models.Comment, error)
	Add(comment *models.Comment) error
	UpdateStatus(id uuid.UUID, status models.CommentStatus) (*models.Comment, error)
	Delete(id uuid.UUID) error
}
