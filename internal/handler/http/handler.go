package http

import (
	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/service"
)

type Handler struct {
	services *service.Services

	// limiter counts API requests per caller.
	limiter *guard.RateLimiter
	auth    config.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *guard.RateLimiter, auth config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		auth:     auth,
		logger:   logger,
	}
}
