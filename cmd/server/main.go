package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/amayadori/weather-console/internal/adapter/discord"
	httpadapter "github.com/amayadori/weather-console/internal/adapter/http"
	"github.com/amayadori/weather-console/internal/adapter/openweather"
	"github.com/amayadori/weather-console/internal/config"
	"github.com/amayadori/weather-console/internal/domain"
	"github.com/amayadori/weather-console/internal/observability"
	"github.com/amayadori/weather-console/internal/router"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if cfg.OpenWeatherKey == "" {
		logger.Warn("OPENWEATHER_API_KEY is not set, weather lookups will fail")
	}

	client := openweather.NewClient(openweather.Config{
		APIKey:  cfg.OpenWeatherKey,
		Country: cfg.CountryCode,
		Lang:    cfg.OpenWeatherLang,
		Aliases: domain.DefaultCityAliases,
		Timeout: cfg.OpenWeatherTimeout,
	}, metrics, logger)
	geocoder := openweather.NewCachedGeocoder(client, cfg.GeocodeCacheSize, metrics)

	// The Discord sink is optional; without a webhook URL replies are
	// still composed, just not delivered anywhere.
	var notifier domain.Notifier
	if cfg.DiscordWebhookURL != "" {
		notifier = discord.NewWebhook(cfg.DiscordWebhookURL, cfg.DiscordTimeout, metrics, logger)
		logger.Info("discord sink enabled")
	} else {
		logger.Info("discord sink disabled")
	}

	commands := router.New(domain.NewParser(domain.DefaultCityChips), geocoder, client, notifier, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, commands, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	logger.Info("shutdown complete")
}
