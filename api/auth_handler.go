package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/database"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/policy"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	resolver  auth.Resolver
	issuer    auth.TokenIssuer
	providers map[string]auth.Provider
}

func newAuthHandler(users database.UserStore, issuer auth.TokenIssuer, providers map[string]auth.Provider) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		resolver:  auth.NewResolver(users),
		issuer:    issuer,
		providers: providers,
	}
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

type sessionUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
	Role  string  `json:"role"`
}

// oauthCallback completes an OAuth sign-in: it exchanges the authorization
// code, creates the user on first sign-in and mints a session token carrying
// the user's role.
func (h authHandler) oauthCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerName := chi.URLParam(r, "provider")
		provider, ok := h.providers[providerName]
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown auth provider"))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("code"))
			return
		}

		identity, err := provider.FetchIdentity(r.Context(), code)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.resolver.EnsureUser(identity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.issuer.Mint(*user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("could not mint session token"))
			return
		}

		h.logger.Info().Str("provider", providerName).Str("email", user.Email).Msg("Signed in")

		h.responder.WriteJSON(w, sessionResponse{
			Token: token,
			User: sessionUser{
				ID:    user.ID.String(),
				Email: user.Email,
				Name:  user.Name,
				Image: user.Image,
				Role:  string(user.Role),
			},
		})
	}
}

// refreshSession re-reads the caller's user record and mints a fresh token,
// so a role change takes effect without a new OAuth round trip.
func (h authHandler) refreshSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromCtx(r.Context())
		if err := policy.RequireAuthenticated(session); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.resolver.RefreshUser(session.UserID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.issuer.Mint(*user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("could not mint session token"))
			return
		}

		h.responder.WriteJSON(w, sessionResponse{
			Token: token,
			User: sessionUser{
				ID:    user.ID.String(),
				Email: user.Email,
				Name:  user.Name,
				Image: user.Image,
				Role:  string(user.Role),
			},
		})
	}
}
