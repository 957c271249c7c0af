package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/crypto"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/internal/validators"
	"github.com/MKhiriev/go-page-guard/models"
)

// actorFromContext returns the authenticated user id as a string, or "" for
// anonymous calls.
func actorFromContext(ctx context.Context) string {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// outcomeOf classifies err for the audit trail.
func outcomeOf(err error) models.AuditOutcome {
	switch {
	case err == nil:
		return models.OutcomeSuccess
	case errors.Is(err, guard.ErrRateLimited):
		return models.OutcomeDenied
	default:
		return models.OutcomeFailure
	}
}

// errorClass is a coarse, secret-free label for err.
func errorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrIntegrity):
		return "integrity"
	case errors.Is(err, crypto.ErrValidation), errors.Is(err, validators.ErrInvalidField):
		return "validation"
	case errors.Is(err, crypto.ErrConfiguration):
		return "configuration"
	case errors.Is(err, guard.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}

func record(ctx context.Context, rec *guard.AuditRecorder, action, resource string, err error, extra map[string]string) {
	fields := models.AuditFields{
		Actor:    actorFromContext(ctx),
		Action:   action,
		Resource: resource,
		Outcome:  outcomeOf(err),
		Context:  extra,
	}
	if err != nil {
		if fields.Context == nil {
			fields.Context = make(map[string]string, 1)
		}
		fields.Context["error"] = errorClass(err)
	}
	rec.Record(ctx, fields)
}

// recordMismatch records a well-formed attempt that did not match.
func recordMismatch(ctx context.Context, rec *guard.AuditRecorder, action, resource string) {
	rec.Record(ctx, models.AuditFields{
		Actor:    actorFromContext(ctx),
		Action:   action,
		Resource: resource,
		Outcome:  models.OutcomeFailure,
		Context:  map[string]string{"error": "mismatch"},
	})
}
