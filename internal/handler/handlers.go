package handler

import (
	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/handler/http"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. apiLimiter
// counts API requests per caller.
func NewHandlers(services *service.Services, apiLimiter *guard.RateLimiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if apiLimiter == nil {
		return nil, errNoRateLimiter
	}

	return &Handlers{
		HTTP: http.NewHandler(services, apiLimiter, cfg.Auth, logger),
	}, nil
}
