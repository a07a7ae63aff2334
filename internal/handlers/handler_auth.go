package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication. Login attempts
// are limited per client IP by loginLimiter.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	if loginLimiter != nil {
		auth.POST("/login", limitergin.NewMiddleware(loginLimiter), h.Login)
		return
	}
	auth.POST("/login", h.Login)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user on a project and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password, req.ProjectID)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Login succeeded", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
