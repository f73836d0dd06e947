// Package bootstrap seeds demo data. Seeding is an explicit startup step
// (SEED_DEMO_DATA=true), never a side effect of a data-access path.
package bootstrap

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tenantly/noteboard/internal/auth"
	"github.com/tenantly/noteboard/internal/domain"
	"go.uber.org/zap"
)

// DemoPassword is the password for every seeded demo user.
const DemoPassword = "password"

type demoUser struct {
	email string
	role  domain.Role
	slug  string
}

// SeedDemoData inserts the demo tenants, users, and starter notes. It is a
// no-op when any users already exist.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	var userCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return err
	}
	if userCount > 0 {
		logger.Info("demo data already present, skipping seed")
		return nil
	}

	logger.Info("no users found, seeding demo data")

	tenantIDs := map[string]uuid.UUID{}
	tenants := []struct {
		slug string
		name string
		plan domain.Plan
	}{
		{"acme", "Acme Inc.", domain.PlanFree},
		{"globex", "Globex Corporation", domain.PlanPro},
	}
	for _, t := range tenants {
		id := uuid.New()
		if _, err := pool.Exec(ctx,
			`INSERT INTO tenants (id, slug, name, plan) VALUES ($1, $2, $3, $4)`,
			id, t.slug, t.name, t.plan,
		); err != nil {
			return err
		}
		tenantIDs[t.slug] = id
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	userIDs := map[string]uuid.UUID{}
	users := []demoUser{
		{"admin@acme.test", domain.RoleAdmin, "acme"},
		{"user@acme.test", domain.RoleMember, "acme"},
		{"admin@globex.test", domain.RoleAdmin, "globex"},
		{"user@globex.test", domain.RoleMember, "globex"},
	}
	for _, u := range users {
		id := uuid.New()
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, role, tenant_id) VALUES ($1, $2, $3, $4, $5)`,
			id, u.email, hash, u.role, tenantIDs[u.slug],
		); err != nil {
			return err
		}
		userIDs[u.email] = id
	}

	notes := []struct {
		content string
		email   string
		slug    string
	}{
		{"Acme initial note.", "admin@acme.test", "acme"},
		{"Globex meeting minutes.", "admin@globex.test", "globex"},
	}
	for _, n := range notes {
		if _, err := pool.Exec(ctx,
			`INSERT INTO notes (id, content, user_id, tenant_id) VALUES ($1, $2, $3, $4)`,
			uuid.New(), n.content, userIDs[n.email], tenantIDs[n.slug],
		); err != nil {
			return err
		}
	}

	logger.Info("demo data seeded",
		zap.Int("tenants", len(tenants)),
		zap.Int("users", len(users)),
		zap.Int("notes", len(notes)),
	)
	return nil
}
