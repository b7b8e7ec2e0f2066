package api

import (
	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, issuer auth.TokenIssuer, providers map[string]auth.Provider) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(database.UserRepo(), issuer, providers),
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		tagHandler:      newTagHandler(database.TagRepo()),
		postHandler:     newPostHandler(database.PostRepo()),
		commentHandler:  newCommentHandler(database.CommentRepo()),
	}
}
