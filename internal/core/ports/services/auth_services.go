package services

import (
	"context"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// AuthSvc signs users in and resolves the session of an authenticated request.
type AuthSvc interface {
	// Login checks the credentials and issues an access token bound to projectID.
	Login(ctx context.Context, username, password string, projectID int) (string, time.Time, error)

	// Session builds the session context of a user working on a project.
	Session(ctx context.Context, userID, projectID int) (*domain.SessionContext, error)
}
