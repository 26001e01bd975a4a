package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "openapp-ads/internal/adapter/http"
	"openapp-ads/internal/adapter/native"
	"openapp-ads/internal/adapter/payment"
	"openapp-ads/internal/adapter/postgres"
	"openapp-ads/internal/adapter/usecase"
	"openapp-ads/internal/config"
	"openapp-ads/internal/db"
)

// main is the entry point of the ad platform. It loads configuration,
// optionally runs database migrations and seeding, initializes the
// database pool, repositories and usecases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemoData {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	houseAdRepo := postgres.NewHouseAdRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	keyRepo := postgres.NewAPIKeyRepository(pool)

	payments := payment.NewClient(cfg.Payment)

	// Separate sources per service; each wraps its own in a mutex.
	selectionRng := rand.New(rand.NewSource(time.Now().UnixNano()))
	serveRng := rand.New(rand.NewSource(time.Now().UnixNano() + 1))

	tracking := usecase.NewTrackingService(eventRepo, campaignRepo)
	svc := httpadapter.Services{
		Campaigns: usecase.NewCampaignService(campaignRepo, payments),
		HouseAds:  usecase.NewHouseAdService(houseAdRepo),
		Keys:      usecase.NewAPIKeyService(keyRepo),
		Tracking:  tracking,
		Selection: usecase.NewSelectionService(campaignRepo, houseAdRepo, native.Disabled{}, selectionRng),
		Serve:     usecase.NewServeService(campaignRepo, keyRepo, tracking, serveRng),
	}

	handler := httpadapter.NewHandler(svc, cfg.Serve.RequireAPIKey, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
