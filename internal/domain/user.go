package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleMember}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TenantID     uuid.UUID `json:"tenant_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
