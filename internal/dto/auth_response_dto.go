package dto

import "time"

// LoginRequest holds the credentials and the project the user signs in to.
type LoginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	ProjectID int    `json:"projectID" binding:"required,gt=0"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
