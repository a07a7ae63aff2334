package domain

import "time"

// User is the person who recorded a sale or a payment.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	DisplayName  string     `json:"displayName"`
	PasswordHash string     `json:"-"`
	Deactivated  bool       `json:"deactivated"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}
