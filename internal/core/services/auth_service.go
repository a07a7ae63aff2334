package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/platform/config"
	"github.com/SscSPs/hospital_billing_app/internal/utils"
)

// AuthService signs users in and resolves request sessions.
type AuthService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	enterpriseRepo portsrepo.EnterpriseReader
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
	now            func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, enterpriseRepo portsrepo.EnterpriseReader) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		enterpriseRepo: enterpriseRepo,
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
		now:            time.Now,
	}
}

var errInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)

// Login checks the credentials and issues a token bound to projectID.
func (s *AuthService) Login(ctx context.Context, username, password string, projectID int) (string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, errInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Deactivated || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", time.Time{}, errInvalidCredentials
	}

	if _, err := s.enterpriseRepo.FindProjectByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("%w: project %d not found", apperrors.ErrValidation, projectID)
		}
		return "", time.Time{}, fmt.Errorf("failed to load project: %w", err)
	}

	token, expiresAt, err := utils.GenerateJWT(user.ID, projectID, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token", slog.Int("user_id", user.ID))
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to record last login", slog.Int("user_id", user.ID))
	}

	s.LogInfo(ctx, "User signed in", slog.Int("user_id", user.ID), slog.Int("project_id", projectID))
	return token, expiresAt, nil
}

// Session builds the session of a user on a project. The currency is the
// currency of the project's enterprise.
func (s *AuthService) Session(ctx context.Context, userID, projectID int) (*domain.SessionContext, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user.Deactivated {
		return nil, fmt.Errorf("%w: user %d is deactivated", apperrors.ErrUnauthorized, userID)
	}

	enterprise, err := s.enterpriseRepo.FindEnterpriseByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session enterprise: %w", err)
	}

	return &domain.SessionContext{
		UserID:       user.ID,
		ProjectID:    projectID,
		EnterpriseID: enterprise.ID,
		CurrencyID:   enterprise.CurrencyID,
	}, nil
}
