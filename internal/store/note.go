package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tenantly/noteboard/internal/domain"
)

type NoteStore struct {
	db *pgxpool.Pool
}

func NewNoteStore(db *pgxpool.Pool) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Create(ctx context.Context, n *domain.Note) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO notes (content, user_id, tenant_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		n.Content, n.UserID, n.TenantID,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (s *NoteStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Note, error) {
	n := &domain.Note{}
	err := s.db.QueryRow(ctx,
		`SELECT id, content, user_id, tenant_id, created_at, updated_at
		 FROM notes WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	).Scan(&n.ID, &n.Content, &n.UserID, &n.TenantID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListByTenant returns the tenant's notes newest first. The id tie-break
// keeps the order deterministic for notes sharing a timestamp.
func (s *NoteStore) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Note, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, content, user_id, tenant_id, created_at, updated_at
		 FROM notes WHERE tenant_id = $1
		 ORDER BY created_at DESC, id DESC`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Content, &n.UserID, &n.TenantID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *NoteStore) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE tenant_id = $1`,
		tenantID,
	).Scan(&count)
	return count, err
}

func (s *NoteStore) UpdateContent(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, content string) (*domain.Note, error) {
	n := &domain.Note{}
	err := s.db.QueryRow(ctx,
		`UPDATE notes SET content = $1, updated_at = NOW()
		 WHERE id = $2 AND tenant_id = $3
		 RETURNING id, content, user_id, tenant_id, created_at, updated_at`,
		content, id, tenantID,
	).Scan(&n.ID, &n.Content, &n.UserID, &n.TenantID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *NoteStore) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
