package http

import (
	"net/http"

	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

func (h *Handler) generateOTPSecret(w http.ResponseWriter, r *http.Request) {
	var req models.OTPEnrollRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Account == "" {
		req.Account = "user-" + callerID(r)
	}

	secret, err := h.services.OTPService.GenerateSecret(r.Context(), req.Account)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, secret, http.StatusCreated)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ok, err := h.services.OTPService.Verify(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.VerifyResponse{Valid: ok}, http.StatusOK)
}
