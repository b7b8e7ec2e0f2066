package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/personal-blog-backend/models"
)

func TestApplyPublishStampSetsTimestampOnPublish(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	post := &models.Post{Status: models.PostPublished}

	applyPublishStamp(post, now)

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)
}

func TestApplyPublishStampNeverOverwrites(t *testing.T) {
	original := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	post := &models.Post{Status: models.PostPublished, PublishedAt: &original}

	applyPublishStamp(post, original.Add(48*time.Hour))

	assert.Equal(t, original, *post.PublishedAt)
}

func TestApplyPublishStampIgnoresOtherStatuses(t *testing.T) {
	for _, status := range []models.PostStatus{models.PostDraft, models.PostArchived} {
		post := &models.Post{Status: status}
		applyPublishStamp(post, time.Now())
		assert.Nil(t, post.PublishedAt, "status %s must not be stamped", status)
	}
}

func TestArchivingKeepsPublishTimestamp(t *testing.T) {
	original := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	post := &models.Post{Status: models.PostArchived, PublishedAt: &original}

	applyPublishStamp(post, time.Now())

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, original, *post.PublishedAt)
}

func TestAccessString(t *testing.T) {
	assert.Equal(t, "restricted", Restricted.String())
	assert.Equal(t, "privileged", Privileged.String())
}
