package dto

import (
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// UserResponse describes the signed in user and the project the session is bound to.
type UserResponse struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	DisplayName  string     `json:"displayName"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	ProjectID    int        `json:"projectID"`
	EnterpriseID int        `json:"enterpriseID"`
	CurrencyID   int        `json:"currencyID"`
}

func ToUserResponse(user *domain.User, session domain.SessionContext) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		LastLogin:    user.LastLogin,
		ProjectID:    session.ProjectID,
		EnterpriseID: session.EnterpriseID,
		CurrencyID:   session.CurrencyID,
	}
}
