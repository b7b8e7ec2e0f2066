package policy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
	"github.com/rpupo63/personal-blog-backend/policy"
)

var (
	anonymous = auth.Session{}
	reader    = auth.Session{UserID: uuid.New(), Role: models.RoleUser, Authenticated: true}
	admin     = auth.Session{UserID: uuid.New(), Role: models.RoleAdmin, Authenticated: true}
)

func TestAccessFor(t *testing.T) {
	assert.Equal(t, database.Restricted, policy.AccessFor(anonymous))
	assert.Equal(t, database.Restricted, policy.AccessFor(reader))
	assert.Equal(t, database.Privileged, policy.AccessFor(admin))
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, policy.RequireAdmin(admin))

	for name, session := range map[string]auth.Session{
		"anonymous": anonymous,
		"reader":    reader,
	} {
		t.Run(name, func(t *testing.T) {
			err := policy.RequireAdmin(session)
			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 401, apiErr.StatusCode)
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	assert.NoError(t, policy.RequireAuthenticated(reader))
	assert.NoError(t, policy.RequireAuthenticated(admin))

	err := policy.RequireAuthenticated(anonymous)
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestCanViewPost(t *testing.T) {
	published := models.Post{Status: models.PostPublished}
	draft := models.Post{Status: models.PostDraft}
	archived := models.Post{Status: models.PostArchived}

	assert.True(t, policy.CanViewPost(anonymous, published))
	assert.True(t, policy.CanViewPost(reader, published))
	assert.True(t, policy.CanViewPost(admin, published))

	assert.False(t, policy.CanViewPost(anonymous, draft))
	assert.False(t, policy.CanViewPost(reader, draft))
	assert.True(t, policy.CanViewPost(admin, draft))

	assert.False(t, policy.CanViewPost(reader, archived))
	assert.True(t, policy.CanViewPost(admin, archived))
}
