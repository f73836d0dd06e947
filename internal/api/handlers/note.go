package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tenantly/noteboard/internal/api/middleware"
	"github.com/tenantly/noteboard/internal/service"
	"go.uber.org/zap"
)

type NoteHandler struct {
	svc    *service.NoteService
	logger *zap.Logger
}

func NewNoteHandler(svc *service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, logger: logger}
}

type noteRequest struct {
	Content string `json:"content"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	notes, err := h.svc.List(r.Context(), identity.TenantID)
	if err != nil {
		h.logger.Error("failed to list notes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.Create(r.Context(), *identity, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoteContentEmpty):
			writeError(w, http.StatusBadRequest, "Note content cannot be empty.")
		case errors.Is(err, service.ErrQuotaExceeded):
			writeError(w, http.StatusForbidden, "Free plan limit of 3 notes reached. Please upgrade.")
		default:
			h.logger.Error("failed to create note", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to create note")
		}
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable id cannot name a note in any tenant.
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}

	note, err := h.svc.GetByID(r.Context(), id, identity.TenantID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeError(w, http.StatusNotFound, "Note not found.")
			return
		}
		h.logger.Error("failed to get note", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.Update(r.Context(), id, identity.TenantID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoteNotFound):
			writeError(w, http.StatusNotFound, "Note not found.")
		case errors.Is(err, service.ErrNoteContentEmpty):
			writeError(w, http.StatusBadRequest, "Content cannot be empty.")
		default:
			h.logger.Error("failed to update note", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to update note")
		}
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found.")
		return
	}

	if err := h.svc.Delete(r.Context(), id, identity.TenantID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeError(w, http.StatusNotFound, "Note not found.")
			return
		}
		h.logger.Error("failed to delete note", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
