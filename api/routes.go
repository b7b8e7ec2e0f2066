package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes wires every endpoint. Role requirements are enforced inside the
// handlers through the policy layer; the session middleware only resolves who
// is asking. logRequests toggles per-request console logging (REQUEST_LOGGING).
func setupRoutes(r chi.Router, handlers *routeHandlers, session sessionMiddleware, startupTime time.Time, logRequests bool) {
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok","uptime":"` + time.Since(startupTime).Round(time.Second).String() + `"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if logRequests {
			r.Use(ColoredHTTPLoggingMiddleware)
		}
		r.Use(session.resolve)

		// Auth endpoints
		r.Get("/auth/{provider}/callback", handlers.authHandler.oauthCallback())
		r.Post("/auth/refresh", handlers.authHandler.refreshSession())

		// Category endpoints
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Post("/categories", handlers.categoryHandler.createCategory())
		r.Get("/categories/{categoryID}", handlers.categoryHandler.getCategory())
		r.Put("/categories/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/categories/{categoryID}", handlers.categoryHandler.deleteCategory())

		// Tag endpoints
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Post("/tags", handlers.tagHandler.createTag())
		r.Get("/tags/{tagID}", handlers.tagHandler.getTag())
		r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

		// Post endpoints
		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Post("/posts", handlers.postHandler.createPost())
		r.Get("/posts/slug/{postSlug}", handlers.postHandler.getPostBySlug())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())
		r.Put("/posts/{postID}", handlers.postHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.postHandler.deletePost())

		// Comment endpoints
		r.Get("/comments", handlers.commentHandler.getCommentsForPost())
		r.Post("/comments", handlers.commentHandler.createComment())
		r.Get("/admin/comments", handlers.commentHandler.getAllComments())
		r.Patch("/comments/{commentID}", handlers.commentHandler.moderateComment())
		r.Delete("/comments/{commentID}", handlers.commentHandler.deleteComment())
	})
}
