package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindForPost returns the comments on a post visible to the access level,
// newest first, with the commenter preloaded.
func (r *CommentRepo) FindForPost(access Access, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Scopes(access.commentScope).
		Where("post_id = ?", postID).
		Preload("User").
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

// FindPage returns one page of comments across all posts for the moderation
// dashboard, optionally narrowed to one status. Callers must have passed the
// admin policy check; this read is unrestricted.
func (r *CommentRepo) FindPage(status *models.CommentStatus, page Page) ([]models.Comment, int64, error) {
	page = page.Normalized()

	query := r.db.Model(&models.Comment{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.
		Preload("User").
		Preload("Post").
		Order("created_at desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&comments).Error
	return comments, total, err
}

// FindByID returns a comment by its ID regardless of status.
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment. Status is forced to pending regardless of what
// the caller set: every comment goes through moderation.
func (r *CommentRepo) Add(comment *models.Comment) error {
	comment.Status = models.CommentPending
	return r.db.Omit("User", "Post", "Parent").Create(comment).Error
}

// UpdateStatus moderates a comment and returns the updated row.
func (r *CommentRepo) UpdateStatus(id uuid.UUID, status models.CommentStatus) (*models.Comment, error) {
	result := r.db.Model(&models.Comment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes a comment from the database by id.
func (r *CommentRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
