package service

import (
	"context"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetBuildInfo returns the linker-injected metadata of the running binary.
func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
