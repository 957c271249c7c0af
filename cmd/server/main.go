package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/handler"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/server"
	"github.com/MKhiriev/go-page-guard/internal/service"
	"github.com/MKhiriev/go-page-guard/internal/store"
	"github.com/MKhiriev/go-page-guard/internal/workers"
	"github.com/MKhiriev/go-page-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, "page-guard-server", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to audit database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	verifyLimiter, err := guard.NewRateLimiter(cfg.Guard.MaxAttempts, cfg.Guard.Window)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating verification rate limiter")
	}
	apiLimiter, err := guard.NewRateLimiter(cfg.Guard.APIMaxRequests, cfg.Guard.Window)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api rate limiter")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), verifyLimiter, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, apiLimiter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	janitor, err := workers.NewRateWindowJanitor(cfg.Guard.SweepInterval, log, verifyLimiter, apiLimiter)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate window janitor")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
