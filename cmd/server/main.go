package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/handler"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/server"
	"github.com/MKhiriev/go-device-sync/internal/service"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/workers"
	"github.com/MKhiriev/go-device-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("device-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("remote_url", cfg.Remote.BaseURL).
		Str("remote_username", cfg.Remote.Username).
		Dur("remote_timeout", cfg.Remote.RequestTimeout).
		Dur("sync_interval", cfg.Workers.SyncInterval()).
		Str("token_file", cfg.Storage.TokenFile).
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log.WithComponent("db"))
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	remoteAdapter, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, log.WithComponent("remote_adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote adapter")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	syncMetrics, err := metrics.NewSyncMetrics(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	storages := store.NewStorages(cfg.Storage, db, log)

	services, err := service.NewServices(storages, remoteAdapter, *cfg, buildInfo, syncMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	syncWorker := workers.NewSyncWorker(services.SyncCoordinator, cfg.Workers, log.WithComponent("sync_worker"))
	backgroundWorkers := workers.NewWorkers(syncWorker)

	handlers, err := handler.NewHandlers(services, syncWorker, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// the first sync cycle runs here; the service is ready once it returns
	if err = backgroundWorkers.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("error starting workers")
	}
	log.Info().Str("version", services.AppInfoService.GetAppVersion(ctx)).Msg("device-sync is ready")

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}

	backgroundWorkers.Stop()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = models.BuildInfoUnset
	}

	if buildDate == "" {
		buildDate = models.BuildInfoUnset
	}

	if buildCommit == "" {
		buildCommit = models.BuildInfoUnset
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
