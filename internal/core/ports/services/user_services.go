package services

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// UserReaderSvc defines read operations on users.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by id. A missing user is apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}
