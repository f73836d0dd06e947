package service

import (
	"context"
	"errors"

	"github.com/tenantly/noteboard/internal/domain"
	"github.com/tenantly/noteboard/internal/store"
	"go.uber.org/zap"
)

var ErrTenantNotFound = errors.New("tenant not found")

type TenantService struct {
	tenants domain.TenantStore
	logger  *zap.Logger
}

func NewTenantService(tenants domain.TenantStore, logger *zap.Logger) *TenantService {
	return &TenantService{tenants: tenants, logger: logger}
}

// Upgrade moves the tenant to the pro plan and returns its current state.
// Upgrading a tenant that is already pro is a successful no-op, which makes
// the operation idempotent. The caller is responsible for having already
// checked that the acting identity may touch this slug.
func (s *TenantService) Upgrade(ctx context.Context, slug string) (*domain.Tenant, error) {
	changed, err := s.tenants.Upgrade(ctx, slug)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if changed {
		s.logger.Info("tenant upgraded",
			zap.String("slug", tenant.Slug),
			zap.String("plan", string(tenant.Plan)),
		)
	}
	return tenant, nil
}
