package domain

import "github.com/google/uuid"

// Identity is the decoded content of a verified token. It is the only
// source of tenant scope and role for a request; handlers never take either
// from a path or body parameter.
type Identity struct {
	UserID     uuid.UUID `json:"userId"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	TenantID   uuid.UUID `json:"tenantId"`
	TenantSlug string    `json:"tenantSlug"`
}
