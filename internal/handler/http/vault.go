package http

import (
	"net/http"

	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

func (h *Handler) encryptField(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	field, err := h.services.VaultService.Encrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, field, http.StatusOK)
}

func (h *Handler) decryptField(w http.ResponseWriter, r *http.Request) {
	var field models.EncryptedField
	if err := decodeJSON(w, r, maxBodyBytes, &field); err != nil {
		writeError(w, r, err)
		return
	}

	plaintext, err := h.services.VaultService.Decrypt(r.Context(), field)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, models.DecryptResponse{Plaintext: plaintext}, http.StatusOK)
}

func (h *Handler) maskField(w http.ResponseWriter, r *http.Request) {
	var req models.MaskRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	masked, err := h.services.VaultService.Mask(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.MaskResponse{Masked: masked}, http.StatusOK)
}

func (h *Handler) encryptCard(w http.ResponseWriter, r *http.Request) {
	var req models.NumberRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.VaultService.EncryptCard(r.Context(), req.Number)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) encryptAccount(w http.ResponseWriter, r *http.Request) {
	var req models.NumberRequest
	if err := decodeJSON(w, r, maxBodyBytes, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.VaultService.EncryptAccount(r.Context(), req.Number)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, account, http.StatusOK)
}
