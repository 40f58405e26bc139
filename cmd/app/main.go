package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oakvale/homestead/internal/catalog"
	"github.com/oakvale/homestead/internal/config"
	"github.com/oakvale/homestead/internal/database"
	"github.com/oakvale/homestead/internal/engine"
	"github.com/oakvale/homestead/internal/handler"
	"github.com/oakvale/homestead/internal/logger"
	"github.com/oakvale/homestead/internal/server"
	"github.com/oakvale/homestead/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second

	dbMaxConns   = 10
	dbMinConns   = 2
	dbMaxIdle    = 5 * time.Minute
	dbMaxLife    = 30 * time.Minute
	cacheEntries = 8
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	initLogger(cfg)

	cat := catalog.MustDefault()
	slog.Info("Catalog loaded", "items", cat.ItemCount(), "recipes", cat.RecipeCount())

	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := engine.New(cat, store, cfg.SaveSlot, seed)
	srv := server.NewServer(cfg.Port, game, store)

	// Restore a previous session if one exists; a fresh slot is not an
	// error.
	ctx := context.Background()
	if _, err := game.Load(ctx); err != nil {
		slog.Info("Starting fresh session", "slot", cfg.SaveSlot)
	} else {
		slog.Info("Restored saved session", "slot", cfg.SaveSlot)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Persist the session before the listener goes away.
	if _, err := game.Save(shutdownCtx); err != nil {
		slog.Error("Failed to save session on shutdown", "error", err)
	}

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

// newStore builds the snapshot store selected by STORAGE_BACKEND.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil

	case config.BackendRedis:
		return storage.NewRedisStore(cfg.RedisAddr, slog.Default()), nil

	case config.BackendPostgres:
		pool, err := database.Connect(context.Background(), database.Config{
			ConnString:  cfg.GetDBConnString(),
			MaxConns:    dbMaxConns,
			MinConns:    dbMinConns,
			MaxIdleTime: dbMaxIdle,
			MaxLifetime: dbMaxLife,
		}, slog.Default())
		if err != nil {
			return nil, err
		}
		pg := storage.NewPostgresStore(pool, slog.Default())
		return storage.NewCachedStore(pg, cacheEntries)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		addSource,
	))
}
