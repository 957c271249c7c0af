package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	timeoutMessage    = `{"error":"request timed out"}`
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(h http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		h = http.TimeoutHandler(h, cfg.RequestTimeout, timeoutMessage)
	}
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           h,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// Serve accepts connections on l until Shutdown is called.
func (h *httpServer) Serve(l net.Listener) error {
	h.logger.Info().Str("address", l.Addr().String()).Msg("HTTP server listening")
	// ErrServerClosed означает штатную остановку через Shutdown
	if err := h.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server shutdown")
	}
}
