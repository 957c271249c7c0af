package http

import (
	"net/http"

	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

func (h *Handler) hashPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	hash, err := h.services.CredentialService.HashPassword(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, hash, http.StatusOK)
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPasswordRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ok, err := h.services.CredentialService.VerifyPassword(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.VerifyResponse{Valid: ok}, http.StatusOK)
}

func (h *Handler) passwordStrength(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	report := h.services.CredentialService.ValidateStrength(r.Context(), req.Password)
	if report.Violations == nil {
		report.Violations = []models.PasswordViolation{}
	}
	utils.WriteJSON(w, report, http.StatusOK)
}
