package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/store"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/models"
)

// MaxAuditPage caps how many entries one List call returns.
const MaxAuditPage = 500

type auditService struct {
	repo   store.AuditRepository
	logger *logger.Logger
}

// NewAuditService returns an AuditService reading from repo.
func NewAuditService(repo store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{repo: repo, logger: logger}
}

// List returns the audit trail of the user in ctx. query.Actor is ignored:
// callers only ever see their own entries.
func (s *auditService) List(ctx context.Context, query models.AuditQuery) ([]models.AuditLogEntry, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNoOwner
	}

	query.Actor = strconv.FormatInt(userID, 10)
	if query.Limit > MaxAuditPage {
		query.Limit = MaxAuditPage
	}

	entries, err := s.repo.List(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("actor", query.Actor).Msg("audit listing failed")
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
