package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/utils"
	"github.com/MKhiriev/go-page-guard/internal/validators"
	"github.com/MKhiriev/go-page-guard/models"
)

type exportService struct {
	packager  Packager
	validator validators.Validator
	audit     *guard.AuditRecorder
	logger    *logger.Logger
}

// NewExportService returns an ExportService that checks requests with
// validator and builds bundles with packager.
func NewExportService(packager Packager, validator validators.Validator, audit *guard.AuditRecorder, logger *logger.Logger) ExportService {
	return &exportService{
		packager:  packager,
		validator: validator,
		audit:     audit,
		logger:    logger,
	}
}

// Export packages req for the user in ctx. The owner id always comes from
// the context, and a missing fingerprint defaults to the owner account.
func (s *exportService) Export(ctx context.Context, req models.ExportRequest) (models.ProtectedPackage, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.ProtectedPackage{}, ErrNoOwner
	}

	req.OwnerID = ownerID
	if req.Protection.UserFingerprint == "" {
		req.Protection.UserFingerprint = fmt.Sprintf("acct-%d", ownerID)
	}

	pkg, err := s.build(ctx, req)

	extra := map[string]string{"template": string(req.Template.Kind)}
	if err == nil {
		extra["export_id"] = pkg.ExportID
	}
	record(ctx, s.audit, "export.create", "bundle", err, extra)

	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("export packaging failed")
		return models.ProtectedPackage{}, fmt.Errorf("package export: %w", err)
	}
	return pkg, nil
}

func (s *exportService) build(ctx context.Context, req models.ExportRequest) (models.ProtectedPackage, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ProtectedPackage{}, err
	}
	return s.packager.Package(ctx, req)
}
