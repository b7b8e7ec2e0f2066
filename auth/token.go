package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/models"
)

// Session is the resolved identity attached to a request. Role is read from
// the token on every request; it is only re-read from storage on an explicit
// refresh.
type Session struct {
	UserID        uuid.UUID
	Email         string
	Role          models.Role
	Authenticated bool
}

// IsAdmin reports whether the session belongs to an authenticated admin.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == models.RoleAdmin
}

// Claims is the JWT payload carried by a session token.
type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and parses signed session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Mint issues a signed token for the user carrying its id, email and role.
func (i TokenIssuer) Mint(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates a token string and returns the session it carries.
func (i TokenIssuer) Parse(tokenString string) (Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, errs.NewExpiredTokenError()
		}
		return Session{}, errs.NewInvalidTokenError()
	}
	if !token.Valid {
		return Session{}, errs.NewInvalidTokenError()
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, errs.NewInvalidTokenError()
	}

	return Session{
		UserID:        userID,
		Email:         claims.Email,
		Role:          claims.Role,
		Authenticated: true,
	}, nil
}
