package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/handler"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	address    string
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. bg runs alongside it and
// stops with it; nil means no background work.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	return s.serve(ctx, l)
}

func (s *server) serve(ctx context.Context, l net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.Serve(l)
	})
	g.Go(func() error {
		return s.workers.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.httpServer.Shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Msg("server shutdown gracefully")
	return err
}
