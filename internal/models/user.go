package models

import "time"

// User represents a row of the users table.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	DisplayName  string     `json:"displayName"`
	PasswordHash string     `json:"-"`
	Deactivated  bool       `json:"deactivated"`
	LastLogin    *time.Time `json:"lastLogin"`
}
