package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tenantly/noteboard/internal/api/middleware"
	"github.com/tenantly/noteboard/internal/service"
	"go.uber.org/zap"
)

type TenantHandler struct {
	svc    *service.TenantService
	logger *zap.Logger
}

func NewTenantHandler(svc *service.TenantService, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{svc: svc, logger: logger}
}

// Upgrade moves the caller's tenant to the pro plan. The route is gated on
// the Admin role by middleware; the slug check here keeps an Admin of one
// tenant from upgrading another.
func (h *TenantHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	slug := chi.URLParam(r, "slug")
	if slug != identity.TenantSlug {
		writeError(w, http.StatusForbidden, "Forbidden: You cannot upgrade another tenant.")
		return
	}

	tenant, err := h.svc.Upgrade(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			writeError(w, http.StatusNotFound, "Tenant not found or upgrade failed.")
			return
		}
		h.logger.Error("failed to upgrade tenant", zap.String("slug", slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to upgrade tenant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Tenant %s successfully upgraded to Pro plan.", tenant.Name),
	})
}
