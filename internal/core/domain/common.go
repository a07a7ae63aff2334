package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     int       `json:"createdBy"` // users.id
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy int       `json:"lastUpdatedBy"`
}
