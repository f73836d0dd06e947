package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tenantly/noteboard/internal/domain"
	"github.com/tenantly/noteboard/internal/store"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// mockUserStore implements domain.UserStore for testing.
type mockUserStore struct {
	users map[string]*domain.User // key: email
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*domain.User)}
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

// mockTenantStore implements domain.TenantStore for testing.
type mockTenantStore struct {
	tenants map[uuid.UUID]*domain.Tenant
	bySlug  map[string]*domain.Tenant
}

func newMockTenantStore() *mockTenantStore {
	return &mockTenantStore{
		tenants: make(map[uuid.UUID]*domain.Tenant),
		bySlug:  make(map[string]*domain.Tenant),
	}
}

func (m *mockTenantStore) add(slug, name string, plan domain.Plan) *domain.Tenant {
	t := &domain.Tenant{
		ID:   uuid.New(),
		Slug: slug,
		Name: name,
		Plan: plan,
	}
	m.tenants[t.ID] = t
	m.bySlug[t.Slug] = t
	return t
}

func (m *mockTenantStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockTenantStore) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t, ok := m.bySlug[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockTenantStore) Upgrade(ctx context.Context, slug string) (bool, error) {
	t, ok := m.bySlug[slug]
	if !ok || t.Plan != domain.PlanFree {
		return false, nil
	}
	t.Plan = domain.PlanPro
	return true, nil
}

// mockNoteStore implements domain.NoteStore for testing.
type mockNoteStore struct {
	notes map[uuid.UUID]*domain.Note
}

func newMockNoteStore() *mockNoteStore {
	return &mockNoteStore{notes: make(map[uuid.UUID]*domain.Note)}
}

func (m *mockNoteStore) Create(ctx context.Context, n *domain.Note) error {
	n.ID = uuid.New()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.UpdatedAt = n.CreatedAt
	copied := *n
	m.notes[n.ID] = &copied
	return nil
}

func (m *mockNoteStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	return n, nil
}

func (m *mockNoteStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Note, error) {
	result := []domain.Note{}
	for _, n := range m.notes {
		if n.TenantID == tenantID {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	return result, nil
}

func (m *mockNoteStore) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	count := 0
	for _, n := range m.notes {
		if n.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (m *mockNoteStore) UpdateContent(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, content string) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok || n.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	n.Content = content
	n.UpdatedAt = time.Now()
	return n, nil
}

func (m *mockNoteStore) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	n, ok := m.notes[id]
	if !ok || n.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}
