package domain

import (
	"context"

	"github.com/google/uuid"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type TenantStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	// Upgrade moves a free tenant to the pro plan. It reports whether a row
	// actually changed; an already-pro tenant changes nothing.
	Upgrade(ctx context.Context, slug string) (bool, error)
}

type NoteStore interface {
	Create(ctx context.Context, n *Note) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*Note, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]Note, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
	UpdateContent(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, content string) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error
}
