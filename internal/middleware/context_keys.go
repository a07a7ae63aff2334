package middleware

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	sessionCtxKey = contextKey("session")
)

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, session domain.SessionContext) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}

// GetSessionFromCtx retrieves the session stored by the auth middleware.
func GetSessionFromCtx(ctx context.Context) (domain.SessionContext, bool) {
	session, ok := ctx.Value(sessionCtxKey).(domain.SessionContext)
	return session, ok
}

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (domain.SessionContext, bool) {
	return GetSessionFromCtx(c.Request.Context())
}
