package auth

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

// Identity is a verified external identity handed back by an OAuth provider.
type Identity struct {
	Email string
	Name  string
	Image *string
}

// Resolver maps verified identities to persisted user records. Lookups run on
// the privileged path: sign-in is system-initiated, not user-initiated, so no
// row restrictions apply.
type Resolver struct {
	users  database.UserStore
	logger zerolog.Logger
}

func NewResolver(users database.UserStore) Resolver {
	return Resolver{
		users:  users,
		logger: log.With().Str("handlerName", "authResolver").Logger(),
	}
}

// EnsureUser returns the user record for an identity, inserting it with the
// default user role on first sign-in. Sign-in without an email always fails.
func (r Resolver) EnsureUser(identity Identity) (*models.User, error) {
	if identity.Email == "" {
		return nil, errs.NewEmailRequiredError()
	}

	user, err := r.users.FindByEmail(identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	user = &models.User{
		Email: identity.Email,
		Name:  identity.Name,
		Image: identity.Image,
		Role:  models.RoleUser,
	}
	if err := r.users.Add(user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	r.logger.Info().Str("email", user.Email).Msg("Created user on first sign-in")
	return user, nil
}

// RefreshUser re-reads a user from storage. Used by the session refresh
// trigger so an administrative promotion takes effect without a new login.
func (r Resolver) RefreshUser(userID uuid.UUID) (*models.User, error) {
	user, err := r.users.FindByID(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return user, nil
}
