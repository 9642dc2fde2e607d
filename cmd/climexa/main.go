package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	genaiadapter "github.com/Vexa12/climexa/internal/adapter/genai"
	httpadapter "github.com/Vexa12/climexa/internal/adapter/http"
	"github.com/Vexa12/climexa/internal/adapter/mapbox"
	"github.com/Vexa12/climexa/internal/config"
	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/observability"
	"github.com/Vexa12/climexa/internal/recommend"
	"github.com/Vexa12/climexa/internal/repository"
	"github.com/Vexa12/climexa/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.StorePath, logger, metrics)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}

	// Initialize the forecast gateway (feature-flagged via GENAI_ENABLED / GENAI_API_KEY).
	var forecaster domain.Forecaster
	if cfg.GenAIEnabled {
		f, err := genaiadapter.NewForecaster(ctx, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout, metrics, logger)
		if err != nil {
			logger.Error("failed to create forecaster", "error", err)
			os.Exit(1)
		}
		forecaster = f
		logger.Info("generative forecasts enabled", "model", cfg.GenAIModel, "timeout", cfg.GenAITimeout)
	} else {
		logger.Info("generative forecasts disabled, fallback predictions only")
	}

	// Initialize the geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	deps := httpadapter.Deps{
		Users:      repository.NewUsers(st),
		Sessions:   repository.NewSessions(st, metrics),
		Events:     repository.NewEvents(st),
		Reviews:    repository.NewReviews(st),
		Astro:      repository.NewAstronomicalEvents(st, logger),
		Catalog:    recommend.NewCatalog(metrics),
		Forecaster: forecaster,
		Geocoder:   geocoder,
		Ready:      storeReadiness{st},
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, deps, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := st.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}

	logger.Info("shutdown complete")
}

// storeReadiness gates readiness on the store file being readable.
type storeReadiness struct {
	store *store.Store
}

func (r storeReadiness) CheckReadiness(_ context.Context) error {
	return r.store.Ping()
}
