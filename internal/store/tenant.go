package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tenantly/noteboard/internal/domain"
)

type TenantStore struct {
	db *pgxpool.Pool
}

func NewTenantStore(db *pgxpool.Pool) *TenantStore {
	return &TenantStore{db: db}
}

func (s *TenantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.get(ctx, `SELECT id, slug, name, plan, created_at, updated_at
		 FROM tenants WHERE id = $1`, id)
}

func (s *TenantStore) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return s.get(ctx, `SELECT id, slug, name, plan, created_at, updated_at
		 FROM tenants WHERE slug = $1`, slug)
}

func (s *TenantStore) get(ctx context.Context, query string, arg any) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := s.db.QueryRow(ctx, query, arg).
		Scan(&t.ID, &t.Slug, &t.Name, &t.Plan, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Upgrade is conditional on the current plan so the plan only ever moves
// free -> pro. Zero rows affected means the tenant is absent or already pro;
// the caller distinguishes the two with a lookup.
func (s *TenantStore) Upgrade(ctx context.Context, slug string) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE tenants SET plan = $1, updated_at = NOW()
		 WHERE slug = $2 AND plan = $3`,
		domain.PlanPro, slug, domain.PlanFree,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
