package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rpupo63/personal-blog-backend/policy"
	"github.com/rpupo63/personal-blog-backend/validate"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo database.CommentStore
}

func newCommentHandler(commentRepo database.CommentStore) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
	}
}

// publicComment is the shape served to readers. Email and moderation status
// stay out of it.
type publicComment struct {
	ID        uuid.UUID         `json:"id"`
	Content   string            `json:"content"`
	ParentID  *uuid.UUID        `json:"parentId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	User      publicCommentUser `json:"user"`
}

type publicCommentUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

type commentListResponse struct {
	Comments   []models.Comment `json:"comments"`
	Pagination Pagination       `json:"pagination"`
}

// getCommentsForPost lists the approved comments of a post, newest first.
// Public. The restricted path applies to every caller here, admins included;
// moderation uses the dedicated admin listing instead.
func (h commentHandler) getCommentsForPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawPostID := r.URL.Query().Get("post_id")
		if rawPostID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("post_id"))
			return
		}
		postID, err := uuid.Parse(rawPostID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("post_id", "must be a valid UUID"))
			return
		}

		comments, err := h.commentRepo.FindForPost(database.Restricted, postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		response := make([]publicComment, 0, len(comments))
		for _, comment := range comments {
			pc := publicComment{
				ID:        comment.ID,
				Content:   comment.Content,
				ParentID:  comment.ParentID,
				CreatedAt: comment.CreatedAt,
			}
			if comment.User != nil {
				pc.User = publicCommentUser{
					ID:    comment.User.ID,
					Name:  comment.User.Name,
					Image: comment.User.Image,
				}
			}
			response = append(response, pc)
		}

		h.responder.WriteJSON(w, response)
	}
}

// createComment submits a comment for moderation. Any signed-in user may
// comment; the comment stays hidden until an admin approves it.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAuthenticated(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input validate.CommentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		content := strings.TrimSpace(input.Content)
		if len(content) < 3 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("content", "must be at least 3 characters"))
			return
		}

		postID, err := uuid.Parse(input.PostID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("postId", "must be a valid UUID"))
			return
		}

		comment := models.Comment{
			PostID:  postID,
			UserID:  session.UserID,
			Content: content,
		}
		if input.ParentID != nil {
			parentID, err := uuid.Parse(*input.ParentID)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("parentId", "must be a valid UUID"))
				return
			}
			comment.ParentID = &parentID
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"comment": comment,
			"message": "Comment submitted and awaiting moderation",
		})
	}
}

// getAllComments is the moderation listing: every comment regardless of
// status, paginated, optionally filtered by status. Admin only.
func (h commentHandler) getAllComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var status *models.CommentStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			candidate := models.CommentStatus(raw)
			switch candidate {
			case models.CommentPending, models.CommentApproved, models.CommentRejected:
				status = &candidate
			default:
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be pending, approved or rejected"))
				return
			}
		}

		page := pageFromRequest(r)

		comments, total, err := h.commentRepo.FindPage(status, page)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		h.responder.WriteJSON(w, commentListResponse{
			Comments:   comments,
			Pagination: paginationFor(page, total),
		})
	}
}

// moderateComment sets a comment's moderation status. Admin only.
func (h commentHandler) moderateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		var input validate.CommentModerationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.UpdateStatus(commentID, input.Status)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "comment", err))
			return
		}

		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment. Admin only.
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAdmin(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
