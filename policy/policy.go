// Package policy holds the authorization-and-content-access rules for posts
// and comments. Handlers run these checks before validation and before any
// data access; failures are authorization errors, never silent empty results.
package policy

import (
	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

// AccessFor picks the data-access trust level for a session: admins read on
// the privileged path, everyone else on the row-restricted one.
func AccessFor(s auth.Session) database.Access {
	if s.IsAdmin() {
		return database.Privileged
	}
	return database.Restricted
}

// RequireAdmin rejects the request unless the session holds the admin role.
// The error carries no hint about whether the target resource exists.
func RequireAdmin(s auth.Session) error {
	if !s.Authenticated {
		return errs.NewMissingTokenError()
	}
	if s.Role != models.RoleAdmin {
		return errs.NewInsufficientRoleError(string(models.RoleAdmin))
	}
	return nil
}

// RequireAuthenticated rejects anonymous requests. Any signed-in role passes;
// comment creation is the main caller.
func RequireAuthenticated(s auth.Session) error {
	if !s.Authenticated {
		return errs.NewMissingTokenError()
	}
	return nil
}

// CanViewPost reports whether a session may see a post: published posts are
// public, drafts and archived posts are admin-only.
func CanViewPost(s auth.Session, post models.Post) bool {
	if post.Status == models.PostPublished {
		return true
	}
	return s.IsAdmin()
}
