package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/models"
)

// PostFilter narrows a post listing. Slugs come straight from the public
// category/tag archive URLs.
type PostFilter struct {
	CategorySlug string
	TagSlug      string
}

type PostRepo struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{
		db:     db,
		logger: log.With().Str("repoName", "postRepo").Logger(),
	}
}

// FindPage returns one page of posts visible to the access level, newest
// first, along with the total row count for the filter.
func (r *PostRepo) FindPage(access Access, filter PostFilter, page Page) ([]models.Post, int64, error) {
	page = page.Normalized()

	query := r.db.Model(&models.Post{}).Scopes(access.postScope)
	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		query = query.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order("posts.created_at desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&posts).Error
	return posts, total, err
}

// FindByID returns a post by ID if the access level may see it. Rows hidden
// from the access level come back as gorm.ErrRecordNotFound, indistinguishable
// from genuinely missing ones.
func (r *PostRepo) FindByID(access Access, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Scopes(access.postScope).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&post, "posts.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a post by its slug, subject to the same visibility rules
// as FindByID.
func (r *PostRepo) FindBySlug(access Access, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Scopes(access.postScope).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&post, "posts.slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post and its tag links in one transaction. A post created
// directly in published status gets its publication timestamp here.
func (r *PostRepo) Add(post *models.Post, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		applyPublishStamp(post, time.Now().UTC())
		if err := tx.Omit("Tags", "Author", "Category").Create(post).Error; err != nil {
			return err
		}
		return replaceTagLinks(tx, post.ID, tagIDs)
	})
}

// Save persists changes to an existing post. When replaceTags is set the tag
// link set is swapped wholesale for tagIDs; otherwise links are untouched.
// The write and the link swap share one transaction so a failed swap never
// leaves a half-updated post behind. Views and CreatedAt are never written
// here: the counter is only ever touched by IncrementViews, so a stale
// fetched value cannot roll it back.
func (r *PostRepo) Save(post *models.Post, tagIDs []uuid.UUID, replaceTags bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		applyPublishStamp(post, time.Now().UTC())
		if err := tx.Omit("Tags", "Author", "Category", "Views", "CreatedAt").Save(post).Error; err != nil {
			return err
		}
		if replaceTags {
			return replaceTagLinks(tx, post.ID, tagIDs)
		}
		return nil
	})
}

// Delete removes a post along with its comments and tag links.
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PostTag{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementViews bumps the view counter by one in a detached goroutine. The
// read that triggered it never waits on or fails because of this write;
// errors are logged and swallowed.
func (r *PostRepo) IncrementViews(id uuid.UUID) {
	go func() {
		err := r.db.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + 1")).Error
		if err != nil {
			r.logger.Error().Err(err).Str("postID", id.String()).Msg("Failed to increment view count")
		}
	}()
}

// applyPublishStamp records the first transition into published status.
// An already-set timestamp is never overwritten, so republishing or editing
// a published post keeps the original publication time.
func applyPublishStamp(post *models.Post, now time.Time) {
	if post.Status == models.PostPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
}

// replaceTagLinks swaps a post's tag links for the given set: existing rows
// are removed, then the full new set is inserted. Never a partial diff.
func replaceTagLinks(tx *gorm.DB, postID uuid.UUID, tagIDs []uuid.UUID) error {
	if err := tx.Delete(&models.PostTag{}, "post_id = ?", postID).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, models.PostTag{PostID: postID, TagID: tagID})
	}
	return tx.Create(&links).Error
}
