package api

import (
	"context"

	"github.com/rpupo63/personal-blog-backend/auth"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds a resolved session to the context
func ctxWithSession(ctx context.Context, session auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// sessionFromCtx retrieves the session from the context. Requests that never
// went through the session middleware, or carried no token, resolve to the
// zero (anonymous) session.
func sessionFromCtx(ctx context.Context) auth.Session {
	if value := ctx.Value(sessionKey); value != nil {
		if session, ok := value.(auth.Session); ok {
			return session
		}
	}
	return auth.Session{}
}
