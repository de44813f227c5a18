package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/db"
	"github.com/senyabanana/capital-schemes/internal/handlers"
	"github.com/senyabanana/capital-schemes/internal/logger"
	"github.com/senyabanana/capital-schemes/internal/metrics"
	"github.com/senyabanana/capital-schemes/internal/repository"
	"github.com/senyabanana/capital-schemes/internal/router"
	"github.com/senyabanana/capital-schemes/internal/router/config"
	"github.com/senyabanana/capital-schemes/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("cannot load config")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schemeRepo, authorityRepo, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing storage")
	}
	defer closeStorage()

	loc, err := ate.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timezone")
	}
	translator := ate.NewTranslator(loc)
	m := metrics.New(prometheus.DefaultRegisterer)

	windowService := services.NewDefaultReportingWindowService(reportingWindowOptions(cfg, loc)...)
	schemeService := services.NewSchemeService(schemeRepo, authorityRepo, windowService, translator, m, log)
	authorityService := services.NewAuthorityService(authorityRepo, schemeRepo, translator, log)

	routes := router.InitRoutes(router.Handlers{
		Schemes:          handlers.NewSchemeHandler(schemeService, log, cfg.RequestTimeout),
		Authorities:      handlers.NewAuthorityHandler(authorityService, log, cfg.RequestTimeout),
		ReportingWindows: handlers.NewReportingWindowHandler(windowService, translator, log),
	}, m, prometheus.DefaultGatherer, log)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           routes,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("address", cfg.ServerAddress).Str("storage", cfg.Storage).Msg("server is listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

// openStorage builds the repositories for the configured storage and a function releasing them.
func openStorage(ctx context.Context, cfg config.Config, log zerolog.Logger) (repository.SchemeRepository, repository.AuthorityRepository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("using in-memory storage, data will not survive a restart")
		return repository.NewMemorySchemeRepository(), repository.NewMemoryAuthorityRepository(), func() {}, nil
	}

	dbSource, err := db.ConnString(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	runDBMigration(log, cfg.MigrationURL, dbSource)

	dbPool, err := db.InitDb(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return repository.NewPostgresSchemeRepository(dbPool), repository.NewPostgresAuthorityRepository(dbPool), dbPool.Close, nil
}

func reportingWindowOptions(cfg config.Config, loc *time.Location) []services.ReportingWindowOption {
	if !cfg.ReportingDemoWindow {
		return nil
	}
	return []services.ReportingWindowOption{services.WithDemoWindow(loc)}
}

func runDBMigration(log zerolog.Logger, migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create a new migrate instance")
	}

	if err = migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}
	log.Info().Msg("db migrated successfully")
}
