package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/voucher_management_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/voucher_management_app/internal/adapters/database/redisstore"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/voucher_management_app/internal/core/services"
	"github.com/SscSPs/voucher_management_app/internal/handlers"
	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/SscSPs/voucher_management_app/internal/platform/config"
	"github.com/SscSPs/voucher_management_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Voucher Management API
// @version 1.0
// @description Cash and warehouse vouchers with gap-tolerant yearly numbering.

// @host localhost:8080
// @BasePath /api
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var dbPool *pgxpool.Pool
	if cfg.UsesPostgres() {
		dbPool, err = database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(logger, cfg); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, dbPool)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	container := services.NewServiceContainer(repos)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, rateLimiter, container)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("store", cfg.StoreDriver),
			slog.String("sequence", cfg.SequenceBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// buildRepositories picks the document store and the counter backend from cfg.
// The returned cleanup releases any client opened here.
func buildRepositories(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) (portsrepo.RepositoryProvider, func(), error) {
	var repos portsrepo.RepositoryProvider
	cleanup := func() {}

	switch cfg.StoreDriver {
	case config.BackendPostgres:
		repos = pgsql.NewRepositoryProvider(dbPool)
	case config.BackendMemory:
		repos = memory.NewRepositoryProvider()
	default:
		return repos, cleanup, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	switch cfg.SequenceBackend {
	case config.BackendPostgres:
		repos.Counters = pgsql.NewCounterRepository(dbPool)
	case config.BackendMemory:
		repos.Counters = memory.NewCounterRepository()
	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return repos, cleanup, err
		}
		repos.Counters = redisstore.NewCounterRepository(client)
		cleanup = func() { database.CloseRedisClient(client) }
	default:
		return repos, cleanup, fmt.Errorf("unsupported sequence backend %q", cfg.SequenceBackend)
	}
	return repos, cleanup, nil
}

func runMigrations(logger *slog.Logger, cfg *config.Config) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
