package app

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

	"autobid-server/internal/config"
	"autobid-server/internal/database"
	"autobid-server/internal/handler"
	"autobid-server/internal/metrics"
	"autobid-server/internal/middleware"
	"autobid-server/internal/repository"
	"autobid-server/internal/router"
	"autobid-server/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

// New wires the whole dependency graph explicitly: config, the shared
// pgx pool, repositories, services, handlers, router. No ambient state
// is read after this point.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	carRepo := repository.NewCarRepository(pool)
	bidRepo := repository.NewBidRepository(pool)
	slog.Info("database ready")

	collector := metrics.NewCollector()

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL, cfg.IsProduction())
	catalogService := service.NewCatalogService(carRepo, collector)
	bidService := service.NewBidService(bidRepo, collector)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:   handler.NewAuthHandler(tokenService),
		Car:    handler.NewCarHandler(catalogService),
		Bid:    handler.NewBidHandler(bidService),
		Health: handler.NewHealthHandler(db),
	}, collector.Handler(), middleware.Metrics(collector))

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
