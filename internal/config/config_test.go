package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8787", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.OpenWeatherKey)
	assert.Equal(t, "ja", cfg.OpenWeatherLang)
	assert.Equal(t, 10*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, "JP", cfg.CountryCode)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
	assert.Empty(t, cfg.DiscordWebhookURL)
	assert.Equal(t, 10*time.Second, cfg.DiscordTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("OPENWEATHER_API_KEY", " test-key ")
	t.Setenv("OPENWEATHER_LANG", "en")
	t.Setenv("OPENWEATHER_TIMEOUT", "5s")
	t.Setenv("COUNTRY_CODE", "US")
	t.Setenv("GEOCODE_CACHE_SIZE", "50")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.example/hook")
	t.Setenv("DISCORD_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "test-key", cfg.OpenWeatherKey)
	assert.Equal(t, "en", cfg.OpenWeatherLang)
	assert.Equal(t, 5*time.Second, cfg.OpenWeatherTimeout)
	assert.Equal(t, "US", cfg.CountryCode)
	assert.Equal(t, 50, cfg.GeocodeCacheSize)
	assert.Equal(t, "https://discord.example/hook", cfg.DiscordWebhookURL)
	assert.Equal(t, 3*time.Second, cfg.DiscordTimeout)
}

func TestLoad_InvalidDurations(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"openweather timeout", "OPENWEATHER_TIMEOUT"},
		{"discord timeout", "DISCORD_TIMEOUT"},
		{"shutdown timeout", "SHUTDOWN_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, "not-a-duration")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.env)
		})
	}
}

func TestLoad_NegativeTimeoutRejected(t *testing.T) {
	t.Setenv("OPENWEATHER_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadCacheSizeFallsBack(t *testing.T) {
	t.Setenv("GEOCODE_CACHE_SIZE", "zero")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.GeocodeCacheSize)
}
