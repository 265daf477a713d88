package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/handler"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/ratelimit"
	"github.com/MKhiriev/go-user-api/internal/server"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/workers"
	"github.com/redis/go-redis/v9"
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
		logger.NewLogger("go-user-api", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-user-api", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	counterStore, closers := newCounterStore(cfg, db)
	limiter := ratelimit.NewLimiter(counterStore, cfg.RateLimit.Max, cfg.RateLimit.Window)
	sweeper := ratelimit.NewSweeper(counterStore, cfg.RateLimit.SweepInterval, log)

	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(sweeper), cfg.Server, log, closers...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// Fatal exits with code 1, so a failed shutdown is visible to the
	// supervisor instead of looking like a clean stop.
	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// newCounterStore selects the rate-limit counter backend. The Redis store is
// opt-in; the default is a process-local in-memory store. The database
// connection is always closed on shutdown, the Redis client only when used.
func newCounterStore(cfg *config.StructuredConfig, db *store.DB) (ratelimit.Store, []io.Closer) {
	closers := []io.Closer{db}

	if cfg.RateLimit.Store != "redis" {
		return ratelimit.NewMemoryStore(), closers
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Storage.Redis.Address,
		Password: cfg.Storage.Redis.Password,
		DB:       cfg.Storage.Redis.Database,
	})

	return ratelimit.NewRedisStore(client), append(closers, client)
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
