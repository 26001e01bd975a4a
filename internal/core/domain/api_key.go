package domain

import "time"

// APIKey is an external integrator credential used by the serving endpoint.
// It has no bearing on the embedded client's own ad selection.
type APIKey struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"owner_id"`
	AppName    string     `json:"app_name"`
	Token      string     `json:"api_key"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
