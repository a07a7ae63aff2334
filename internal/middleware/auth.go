package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionResolver turns token claims into a full session.
type SessionResolver interface {
	Session(ctx context.Context, userID, projectID int) (*domain.SessionContext, error)
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and stores the resulting session in the request context.
func AuthMiddleware(jwtSecret string, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthorized(c, msg)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Error("User ID (subject) invalid in valid token", slog.String("error", err.Error()))
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		session, err := sessions.Session(c.Request.Context(), userID, claims.ProjectID)
		if err != nil {
			status := http.StatusUnauthorized
			if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Error("Failed to resolve session", slog.String("error", err.Error()))
				status = http.StatusInternalServerError
			}
			c.AbortWithStatusJSON(status, gin.H{"error": apperrors.Kind(err), "message": "Unable to resolve session"})
			return
		}

		enrichedLogger := logger.With(
			slog.Int("user_id", session.UserID),
			slog.Int("project_id", session.ProjectID),
		)
		ctx := WithSession(c.Request.Context(), *session)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UnauthorizedError", "message": msg})
}
