package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"ValidationError"`
	Message string `json:"message" example:"sale has no items"`
}

// respondError writes err using the status and kind of its taxonomy entry.
// Internal errors are logged and their text is never sent to the client.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	message := err.Error()

	var appErr *apperrors.AppError
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		message = fallback
	case status == http.StatusFailedDependency:
		logger.Error(fallback, slog.String("error", err.Error()))
		if errors.As(err, &appErr) {
			message = appErr.Message
		}
	default:
		logger.Warn(fallback, slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Error: apperrors.Kind(err), Message: message})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   apperrors.Kind(apperrors.ErrValidation),
		Message: "Invalid request format: " + err.Error(),
	})
}

// sessionOrAbort returns the session set by the auth middleware.
func sessionOrAbort(c *gin.Context) (domain.SessionContext, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "UnauthorizedError", Message: "Unauthorized"})
		return session, false
	}
	return session, true
}
