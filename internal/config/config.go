package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// OpenWeather provider configuration. An empty key is allowed: every
	// lookup then resolves to "place not found".
	OpenWeatherKey     string
	OpenWeatherLang    string
	OpenWeatherTimeout time.Duration
	CountryCode        string
	GeocodeCacheSize   int

	// Discord notification sink. Empty URL disables posting.
	DiscordWebhookURL string
	DiscordTimeout    time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	owTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	discordTimeout, err := parseDuration("DISCORD_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8787"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OpenWeatherKey:     strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")),
		OpenWeatherLang:    envOrDefault("OPENWEATHER_LANG", "ja"),
		OpenWeatherTimeout: owTimeout,
		CountryCode:        envOrDefault("COUNTRY_CODE", "JP"),
		GeocodeCacheSize:   parseGeocodeCacheSize(),

		DiscordWebhookURL: strings.TrimSpace(os.Getenv("DISCORD_WEBHOOK_URL")),
		DiscordTimeout:    discordTimeout,
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.CountryCode == "" {
		return nil, errors.New("COUNTRY_CODE is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseGeocodeCacheSize() int {
	if s := os.Getenv("GEOCODE_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
