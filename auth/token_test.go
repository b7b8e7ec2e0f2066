package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	user := models.User{
		ID:    uuid.New(),
		Email: "reader@example.com",
		Name:  "Reader",
		Role:  models.RoleAdmin,
	}

	token, err := issuer.Mint(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, user.Email, session.Email)
	assert.Equal(t, models.RoleAdmin, session.Role)
	assert.True(t, session.Authenticated)
	assert.True(t, session.IsAdmin())
}

func TestParseExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Mint(models.User{ID: uuid.New(), Email: "reader@example.com"})
	require.NoError(t, err)

	session, err := issuer.Parse(token)
	require.Error(t, err)
	assert.False(t, session.Authenticated)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Mint(models.User{ID: uuid.New(), Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)

	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestParseGarbageToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Parse("not-a-token")
	require.Error(t, err)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	claims := Claims{
		Email: "reader@example.com",
		Role:  models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(unsigned)
	require.Error(t, err)
}

func TestAnonymousSessionIsNotAdmin(t *testing.T) {
	var session Session
	assert.False(t, session.IsAdmin())

	// Role alone is not enough without authentication.
	session.Role = models.RoleAdmin
	assert.False(t, session.IsAdmin())
}
