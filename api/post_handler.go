package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rpupo63/personal-blog-backend/policy"
	"github.com/rpupo63/personal-blog-backend/slugify"
	"github.com/rpupo63/personal-blog-backend/validate"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  database.PostStore
}

func newPostHandler(postRepo database.PostStore) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
	}
}

type postListResponse struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// getAllPosts lists posts newest-first with pagination and optional
// category/tag slug filters. Anonymous callers only see published posts;
// admins see every status.
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		access := policy.AccessFor(session)

		filter := database.PostFilter{
			CategorySlug: r.URL.Query().Get("category"),
			TagSlug:      r.URL.Query().Get("tag"),
		}
		page := pageFromRequest(r)

		posts, total, err := h.postRepo.FindPage(access, filter, page)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "posts", err))
			return
		}

		h.responder.WriteJSON(w, postListResponse{
			Posts:      posts,
			Pagination: paginationFor(page, total),
		})
	}
}

// getPost returns a single post by ID and records the view. Drafts and
// archived posts surface as not-found for non-admins.
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		post, err := h.postRepo.FindByID(policy.AccessFor(session), postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		// View counting is best-effort and never delays the response.
		h.postRepo.IncrementViews(post.ID)

		h.responder.WriteJSON(w, post)
	}
}

// getPostBySlug is getPost keyed by slug, for public permalink pages.
func (h postHandler) getPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())

		slug := chi.URLParam(r, "postSlug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing post slug"))
			return
		}

		post, err := h.postRepo.FindBySlug(policy.AccessFor(session), slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		h.postRepo.IncrementViews(post.ID)

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a post. Admin only. The slug is derived from the title
// when the payload omits it, and new posts default to draft.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input validate.PostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug := input.Slug
		if slug == "" {
			slug = slugify.Slugify(input.Title)
		}
		if slug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("slug", "a slug could not be derived from the title"))
			return
		}

		status := input.Status
		if status == "" {
			status = models.PostDraft
		}

		post := models.Post{
			Title:         input.Title,
			Slug:          slug,
			Content:       input.Content,
			Excerpt:       input.Excerpt,
			FeaturedImage: input.FeaturedImage,
			AuthorID:      session.UserID,
			Status:        status,
		}
		if input.CategoryID != nil {
			categoryID, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("categoryId", "must be a valid UUID"))
				return
			}
			post.CategoryID = &categoryID
		}

		tagIDs, err := parseTagIDs(input.Tags)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.postRepo.Add(&post, tagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "post", err))
			return
		}

		created, err := h.postRepo.FindByID(database.Privileged, post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		h.responder.WriteCreated(w, created)
	}
}

// updatePost applies a partial update to a post. Admin only. Sending a tags
// array replaces the post's tag set wholesale; omitting it leaves the set
// alone. Publishing stamps publishedAt on the first transition only.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		var input validate.PostUpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(database.Privileged, postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		if input.Title != nil {
			post.Title = *input.Title
		}
		if input.Slug != nil {
			post.Slug = *input.Slug
		}
		if input.Content != nil {
			post.Content = *input.Content
		}
		if input.Excerpt != nil {
			post.Excerpt = input.Excerpt
		}
		if input.FeaturedImage != nil {
			post.FeaturedImage = input.FeaturedImage
		}
		if input.CategoryID != nil {
			categoryID, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("categoryId", "must be a valid UUID"))
				return
			}
			post.CategoryID = &categoryID
		}
		if input.Status != nil {
			post.Status = *input.Status
		}

		tagIDs, err := parseTagIDs(input.Tags)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		replaceTags := input.Tags != nil

		if err := h.postRepo.Save(post, tagIDs, replaceTags); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "post", err))
			return
		}

		updated, err := h.postRepo.FindByID(database.Privileged, post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deletePost removes a post along with its comments and tag links. Admin only.
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		if err := h.postRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}

func parseTagIDs(tags []string) ([]uuid.UUID, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(tags))
	for _, raw := range tags {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.NewInvalidFieldError("tags", "must contain valid UUIDs")
		}
		tagIDs = append(tagIDs, id)
	}
	return tagIDs, nil
}
