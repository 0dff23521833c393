package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/user/market-dashboard/internal/adapter/firecrawl"
	"github.com/user/market-dashboard/internal/adapter/postgres"
	redis_adapter "github.com/user/market-dashboard/internal/adapter/redis"
	"github.com/user/market-dashboard/internal/delivery/http/handler"
	"github.com/user/market-dashboard/internal/delivery/http/router"
	"github.com/user/market-dashboard/internal/repository"
	"github.com/user/market-dashboard/internal/usecase"
	"github.com/user/market-dashboard/pkg/config"
	"github.com/user/market-dashboard/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// --- Logger ---
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck
	zl.Info("Logger initialized", zap.String("level", cfg.LogLevel))

	// --- Credential storage ---
	ctx := context.Background()
	store, closeStore, err := openCredentialStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Unable to open credential storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer closeStore()

	// --- Use Cases ---
	crawlAPI := firecrawl.Factory(
		firecrawl.WithBaseURL(cfg.FirecrawlBaseURL),
		firecrawl.WithHTTPClient(firecrawl.NewHTTPClient(cfg.FirecrawlHTTPTimeout())),
		firecrawl.WithPollInterval(cfg.FirecrawlPollEvery()),
	)
	gateway := usecase.NewCrawlGateway(store, crawlAPI, cfg.CredentialTestURL, zl)
	quotes := usecase.NewQuoteService(zl)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(gateway, quotes, store, zl)
	httpRouter := router.New(apiHandler, zl)

	server := &http.Server{
		Addr:        ":" + cfg.ServerPort,
		Handler:     httpRouter,
		ReadTimeout: 5 * time.Second,
		// Crawls hold the response until the remote job finishes.
		WriteTimeout: cfg.FirecrawlHTTPTimeout() + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	if cfg.FirecrawlHTTPTimeout() == 0 {
		server.WriteTimeout = 0
	}

	go func() {
		zl.Info("Starting server", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Could not listen on port", zap.String("port", cfg.ServerPort), zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server exited")
}

func openCredentialStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (repository.CredentialRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := dbpool.Ping(ctx); err != nil {
			dbpool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		repo := postgres.NewCredentialRepo(dbpool)
		if err := repo.EnsureSchema(ctx); err != nil {
			dbpool.Close()
			return nil, nil, err
		}
		zl.Info("PostgreSQL connection pool established")
		return repo, dbpool.Close, nil

	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		zl.Info("Redis connection established", zap.String("addr", cfg.RedisAddr))
		return redis_adapter.NewCredentialRepo(rdb), func() { _ = rdb.Close() }, nil
	}
}
