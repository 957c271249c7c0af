package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/packager"
	"github.com/MKhiriev/go-page-guard/internal/protection"
	"github.com/MKhiriev/go-page-guard/internal/service"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/internal/validators"
	"github.com/MKhiriev/go-page-guard/models"
)

// integrityMessage is the only detail a caller gets about a failed
// decryption.
const integrityMessage = "unable to process"

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrNoOwner, http.StatusUnauthorized},
	{guard.ErrRateLimited, http.StatusTooManyRequests},
	{crypto.ErrIntegrity, http.StatusUnprocessableEntity},
	{crypto.ErrValidation, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{packager.ErrInvalidRequest, http.StatusBadRequest},
	{validators.ErrInvalidField, http.StatusBadRequest},
	{packager.ErrEmptyContent, http.StatusBadRequest},
	{packager.ErrInvalidDomain, http.StatusBadRequest},
	{models.ErrUnknownTemplateKind, http.StatusBadRequest},
	{models.ErrTemplateOptionsMismatch, http.StatusBadRequest},
	{protection.ErrInvalidTuning, http.StatusBadRequest},
	{crypto.ErrConfiguration, http.StatusInternalServerError},
	{context.DeadlineExceeded, http.StatusServiceUnavailable},
	{context.Canceled, http.StatusServiceUnavailable},
}

type errorResponse struct {
	Error      string                     `json:"error"`
	Violations []models.PasswordViolation `json:"violations,omitempty"`
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON error body. Server-side failures and
// integrity failures carry no detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	resp := errorResponse{Error: err.Error()}
	switch {
	case status == http.StatusUnprocessableEntity:
		resp.Error = integrityMessage
	case status >= http.StatusInternalServerError:
		resp.Error = http.StatusText(status)
	}

	var weak *service.WeakPasswordError
	if errors.As(err, &weak) {
		resp.Violations = weak.Report.Violations
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Int("status", status).Str("error", resp.Error).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}
