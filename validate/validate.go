// Package validate holds the request payload schemas for the admin and
// public write endpoints. Each entity has a creation input and an update
// input in which every field is optional; rules on optional fields only
// apply when the field is present. Validation fails closed and reports the
// first failing field.
package validate

import (
	"errors"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

// slugRegex admits exactly the alphabet Slugify emits, so a server-derived
// slug can always be resubmitted through the validated slug field.
var slugRegex = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

var (
	postStatuses    = []interface{}{models.PostDraft, models.PostPublished, models.PostArchived}
	commentStatuses = []interface{}{models.CommentPending, models.CommentApproved, models.CommentRejected}
)

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

func (in CategoryInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Slug, validation.Required, validation.Match(slugRegex)),
		validation.Field(&in.Description, validation.Length(0, 500)),
	))
}

// CategoryUpdateInput is CategoryInput with all fields optional.
type CategoryUpdateInput struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (in CategoryUpdateInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Length(1, 100)),
		validation.Field(&in.Slug, validation.Match(slugRegex)),
		validation.Field(&in.Description, validation.Length(0, 500)),
	))
}

// TagInput is the payload for creating a tag.
type TagInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (in TagInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&in.Slug, validation.Required, validation.Match(slugRegex)),
	))
}

// TagUpdateInput is TagInput with all fields optional.
type TagUpdateInput struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

func (in TagUpdateInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Length(1, 50)),
		validation.Field(&in.Slug, validation.Match(slugRegex)),
	))
}

// PostInput is the payload for creating a post. Slug may be omitted, in
// which case the server derives it from the title.
type PostInput struct {
	Title         string            `json:"title"`
	Slug          string            `json:"slug,omitempty"`
	Content       string            `json:"content"`
	Excerpt       *string           `json:"excerpt,omitempty"`
	FeaturedImage *string           `json:"featuredImage,omitempty"`
	CategoryID    *string           `json:"categoryId,omitempty"`
	Status        models.PostStatus `json:"status,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
}

func (in PostInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Slug, validation.Match(slugRegex)),
		validation.Field(&in.Content, validation.Required),
		validation.Field(&in.Excerpt, validation.Length(0, 500)),
		validation.Field(&in.FeaturedImage, is.URL),
		validation.Field(&in.CategoryID, is.UUID),
		validation.Field(&in.Status, validation.In(postStatuses...)),
		validation.Field(&in.Tags, validation.Each(is.UUID)),
	))
}

// PostUpdateInput is PostInput with all fields optional. A nil Tags slice
// leaves the tag set alone; a non-nil one replaces it wholesale.
type PostUpdateInput struct {
	Title         *string            `json:"title,omitempty"`
	Slug          *string            `json:"slug,omitempty"`
	Content       *string            `json:"content,omitempty"`
	Excerpt       *string            `json:"excerpt,omitempty"`
	FeaturedImage *string            `json:"featuredImage,omitempty"`
	CategoryID    *string            `json:"categoryId,omitempty"`
	Status        *models.PostStatus `json:"status,omitempty"`
	Tags          []string           `json:"tags,omitempty"`
}

func (in PostUpdateInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Length(1, 200)),
		validation.Field(&in.Slug, validation.Match(slugRegex)),
		validation.Field(&in.Excerpt, validation.Length(0, 500)),
		validation.Field(&in.FeaturedImage, is.URL),
		validation.Field(&in.CategoryID, is.UUID),
		validation.Field(&in.Status, validation.In(postStatuses...)),
		validation.Field(&in.Tags, validation.Each(is.UUID)),
	))
}

// CommentInput is the payload for creating a comment.
type CommentInput struct {
	PostID   string  `json:"postId"`
	Content  string  `json:"content"`
	ParentID *string `json:"parentId,omitempty"`
}

func (in CommentInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.PostID, validation.Required, is.UUID),
		validation.Field(&in.Content, validation.Required, validation.Length(1, 1000)),
		validation.Field(&in.ParentID, is.UUID),
	))
}

// CommentModerationInput is the admin payload for changing a comment's
// moderation status.
type CommentModerationInput struct {
	Status models.CommentStatus `json:"status"`
}

func (in CommentModerationInput) Validate() error {
	return fieldError(validation.ValidateStruct(&in,
		validation.Field(&in.Status, validation.Required, validation.In(commentStatuses...)),
	))
}

// fieldError converts an ozzo validation result into a field-level ApiErr.
// When several fields fail, the lexicographically first one is reported so
// the response is deterministic.
func fieldError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for field := range ve {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		if len(fields) > 0 {
			field := fields[0]
			return errs.NewInvalidFieldError(field, ve[field].Error())
		}
	}

	return errs.NewBadRequestError(err.Error())
}
