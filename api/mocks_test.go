package api

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/models"
)

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) FindPage(access database.Access, filter database.PostFilter, page database.Page) ([]models.Post, int64, error) {
	args := m.Called(access, filter, page)
	var posts []models.Post
	if v := args.Get(0); v != nil {
		posts = v.([]models.Post)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *mockPostStore) FindByID(access database.Access, id uuid.UUID) (*models.Post, error) {
	args := m.Called(access, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) FindBySlug(access database.Access, slug string) (*models.Post, error) {
	args := m.Called(access, slug)
	if v := args.Get(0); v != nil {
		return v.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) Add(post *models.Post, tagIDs []uuid.UUID) error {
	args := m.Called(post, tagIDs)
	return args.Error(0)
}

func (m *mockPostStore) Save(post *models.Post, tagIDs []uuid.UUID, replaceTags bool) error {
	args := m.Called(post, tagIDs, replaceTags)
	return args.Error(0)
}

func (m *mockPostStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockPostStore) IncrementViews(id uuid.UUID) {
	m.Called(id)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) FindForPost(access database.Access, postID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(access, postID)
	var comments []models.Comment
	if v := args.Get(0); v != nil {
		comments = v.([]models.Comment)
	}
	return comments, args.Error(1)
}

func (m *mockCommentStore) FindPage(status *models.CommentStatus, page database.Page) ([]models.Comment, int64, error) {
	args := m.Called(status, page)
	var comments []models.Comment
	if v := args.Get(0); v != nil {
		comments = v.([]models.Comment)
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentStore) FindByID(id uuid.UUID) (*models.Comment, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentStore) Add(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *mockCommentStore) UpdateStatus(id uuid.UUID, status models.CommentStatus) (*models.Comment, error) {
	args := m.Called(id, status)
	if v := args.Get(0); v != nil {
		return v.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
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

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) FindAll() ([]models.Category, error) {
	args := m.Called()
	var categories []models.Category
	if v := args.Get(0); v != nil {
		categories = v.([]models.Category)
	}
	return categories, args.Error(1)
}

func (m *mockCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) Add(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryStore) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryStore) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
