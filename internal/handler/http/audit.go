package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

// listAudit returns the caller's audit trail, newest first. The optional
// "limit" query parameter bounds the page size.
func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	var query models.AuditQuery
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: limit must be a non-negative integer", ErrInvalidBody))
			return
		}
		query.Limit = limit
	}

	entries, err := h.services.AuditService.List(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	utils.WriteJSON(w, entries, http.StatusOK)
}
