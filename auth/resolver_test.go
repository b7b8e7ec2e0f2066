package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Add(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserStore) PromoteByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func TestEnsureUserReturnsExistingUser(t *testing.T) {
	store := new(mockUserStore)
	existing := &models.User{
		ID:    uuid.New(),
		Email: "reader@example.com",
		Name:  "Reader",
		Role:  models.RoleAdmin,
	}
	store.On("FindByEmail", "reader@example.com").Return(existing, nil)

	resolver := NewResolver(store)
	user, err := resolver.EnsureUser(Identity{Email: "reader@example.com", Name: "Someone Else"})

	require.NoError(t, err)
	assert.Equal(t, existing, user)
	store.AssertNotCalled(t, "Add", mock.Anything)
}

func TestEnsureUserCreatesOnFirstSignIn(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	store.On("Add", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" && u.Name == "New Reader" && u.Role == models.RoleUser
	})).Return(nil)

	resolver := NewResolver(store)
	user, err := resolver.EnsureUser(Identity{Email: "new@example.com", Name: "New Reader"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	store.AssertExpectations(t)
}

func TestEnsureUserRejectsEmptyEmail(t *testing.T) {
	store := new(mockUserStore)

	resolver := NewResolver(store)
	_, err := resolver.EnsureUser(Identity{Name: "No Email"})

	require.Error(t, err)
	apiErr, ok := err.(*errs.ApiErr)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
	store.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestEnsureUserPropagatesLookupFailure(t *testing.T) {
	store := new(mockUserStore)
	store.On("FindByEmail", "reader@example.com").Return(nil, errors.New("connection refused"))

	resolver := NewResolver(store)
	_, err := resolver.EnsureUser(Identity{Email: "reader@example.com"})

	require.Error(t, err)
	store.AssertNotCalled(t, "Add", mock.Anything)
}

func TestRefreshUserRereadsRecord(t *testing.T) {
	store := new(mockUserStore)
	userID := uuid.New()
	promoted := &models.User{ID: userID, Email: "reader@example.com", Role: models.RoleAdmin}
	store.On("FindByID", userID).Return(promoted, nil)

	resolver := NewResolver(store)
	user, err := resolver.RefreshUser(userID)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestRefreshUserUnknownID(t *testing.T) {
	store := new(mockUserStore)
	userID := uuid.New()
	store.On("FindByID", userID).Return(nil, gorm.ErrRecordNotFound)

	resolver := NewResolver(store)
	_, err := resolver.RefreshUser(userID)

	require.Error(t, err)
}
