package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/models"
)

func TestCommentRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupTestDB(t)
	repo := database.NewCommentRepo(db)

	allTables := []string{"comments", "posts", "users"}

	addComment := func(t *testing.T, postID, userID uuid.UUID, content string) models.Comment {
		t.Helper()
		comment := models.Comment{PostID: postID, UserID: userID, Content: content}
		require.NoError(t, repo.Add(&comment))
		return comment
	}

	t.Run("new comments always start pending", func(t *testing.T) {
		truncateTables(t, db, allTables...)
		author := createTestUser(t, db, models.RoleAdmin)
		reader := createTestUser(t, db, models.RoleUser)
		post := createTestPost(t, db, author.ID, models.PostPublished, time.Now().UTC())

		comment := models.Comment{
			PostID:  post.ID,
			UserID:  reader.ID,
			Content: "first!",
			Status:  models.CommentApproved, // caller-supplied status is ignored
		}
		require.NoError(t, repo.Add(&comment))
		assert.Equal(t, models.CommentPending, comment.Status)

		stored, err := repo.FindByID(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CommentPending, stored.Status)
	})

	t.Run("restricted listing only shows approved comments", func(t *testing.T) {
		truncateTables(t, db, allTables...)
		author := createTestUser(t, db, models.RoleAdmin)
		reader := createTestUser(t, db, models.RoleUser)
		post := createTestPost(t, db, author.ID, models.PostPublished, time.Now().UTC())

		approved := addComment(t, post.ID, reader.ID, "approved one")
		pending := addComment(t, post.ID, reader.ID, "pending one")
		rejected := addComment(t, post.ID, reader.ID, "rejected one")

		_, err := repo.UpdateStatus(approved.ID, models.CommentApproved)
		require.NoError(t, err)
		_, err = repo.UpdateStatus(rejected.ID, models.CommentRejected)
		require.NoError(t, err)

		visible, err := repo.FindForPost(database.Restricted, post.ID)
		require.NoError(t, err)
		require.Len(t, visible, 1)
		assert.Equal(t, approved.ID, visible[0].ID)
		require.NotNil(t, visible[0].User)
		assert.Equal(t, reader.Name, visible[0].User.Name)

		all, err := repo.FindForPost(database.Privileged, post.ID)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		_ = pending
	})

	t.Run("moderation listing paginates and filters by status", func(t *testing.T) {
		truncateTables(t, db, allTables...)
		author := createTestUser(t, db, models.RoleAdmin)
		reader := createTestUser(t, db, models.RoleUser)
		post := createTestPost(t, db, author.ID, models.PostPublished, time.Now().UTC())

		for i := 0; i < 7; i++ {
			addComment(t, post.ID, reader.ID, "pending comment")
		}
		approved := addComment(t, post.ID, reader.ID, "approved comment")
		_, err := repo.UpdateStatus(approved.ID, models.CommentApproved)
		require.NoError(t, err)

		comments, total, err := repo.FindPage(nil, database.Page{Page: 1, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
		assert.Len(t, comments, 5)

		status := models.CommentPending
		comments, total, err = repo.FindPage(&status, database.Page{Page: 2, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Len(t, comments, 2)
	})

	t.Run("moderating an unknown comment reports not found", func(t *testing.T) {
		truncateTables(t, db, allTables...)

		_, err := repo.UpdateStatus(uuid.New(), models.CommentApproved)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

		assert.True(t, errors.Is(repo.Delete(uuid.New()), gorm.ErrRecordNotFound))
	})

	t.Run("threaded replies keep their parent link", func(t *testing.T) {
		truncateTables(t, db, allTables...)
		author := createTestUser(t, db, models.RoleAdmin)
		reader := createTestUser(t, db, models.RoleUser)
		post := createTestPost(t, db, author.ID, models.PostPublished, time.Now().UTC())

		parent := addComment(t, post.ID, reader.ID, "parent comment")

		reply := models.Comment{
			PostID:   post.ID,
			UserID:   reader.ID,
			ParentID: &parent.ID,
			Content:  "a reply",
		}
		require.NoError(t, repo.Add(&reply))

		stored, err := repo.FindByID(reply.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ParentID)
		assert.Equal(t, parent.ID, *stored.ParentID)
	})
}
