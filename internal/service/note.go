package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tenantly/noteboard/internal/domain"
	"github.com/tenantly/noteboard/internal/store"
	"go.uber.org/zap"
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteContentEmpty = errors.New("note content cannot be empty")
	ErrQuotaExceeded    = errors.New("free plan note limit reached")
)

type NoteService struct {
	notes   domain.NoteStore
	tenants domain.TenantStore
	logger  *zap.Logger
}

func NewNoteService(notes domain.NoteStore, tenants domain.TenantStore, logger *zap.Logger) *NoteService {
	return &NoteService{notes: notes, tenants: tenants, logger: logger}
}

func (s *NoteService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Note, error) {
	return s.notes.ListByTenant(ctx, tenantID)
}

// Create checks the tenant's quota against the note count observed now and
// inserts. There is no lock between the count and the insert; concurrent
// creates can overshoot the free limit. Accepted best-effort behavior.
func (s *NoteService) Create(ctx context.Context, identity domain.Identity, content string) (*domain.Note, error) {
	if content == "" {
		return nil, ErrNoteContentEmpty
	}

	tenant, err := s.tenants.GetByID(ctx, identity.TenantID)
	if err != nil {
		return nil, err
	}

	if tenant.Plan != domain.PlanPro {
		count, err := s.notes.CountByTenant(ctx, identity.TenantID)
		if err != nil {
			return nil, err
		}
		if !domain.CanCreateNote(tenant.Plan, count) {
			return nil, ErrQuotaExceeded
		}
	}

	note := &domain.Note{
		Content:  content,
		UserID:   identity.UserID,
		TenantID: identity.TenantID,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// Update reports a missing or cross-tenant note before validating content,
// so a caller probing another tenant's note id sees NotFound and nothing else.
func (s *NoteService) Update(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, content string) (*domain.Note, error) {
	if _, err := s.notes.GetByID(ctx, id, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if content == "" {
		return nil, ErrNoteContentEmpty
	}
	note, err := s.notes.UpdateContent(ctx, id, tenantID, content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) error {
	if err := s.notes.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}
