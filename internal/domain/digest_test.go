package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(t *testing.T, stamp string, temp *float64, main string) ForecastEntry {
	t.Helper()
	at, err := time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
	return ForecastEntry{At: at, TempC: temp, WeatherMain: main}
}

func TestSummarizeForecast_FirstFiveDates(t *testing.T) {
	SetLocation(time.UTC)
	defer SetLocation(nil)

	var entries []ForecastEntry
	for day := 1; day <= 7; day++ {
		at := time.Date(2026, 1, day, 12, 0, 0, 0, time.UTC)
		entries = append(entries, ForecastEntry{At: at, TempC: fp(float64(day)), WeatherMain: "Clear"})
	}

	digests := SummarizeForecast(entries)
	require.Len(t, digests, 5)
	assert.Equal(t, "01/01", digests[0].DateLabel)
	assert.Equal(t, "01/05", digests[4].DateLabel)
}

func TestSummarizeForecast_ProviderOrderKept(t *testing.T) {
	SetLocation(time.UTC)
	defer SetLocation(nil)

	// Provider order is the contract, even when not chronological.
	entries := []ForecastEntry{
		entryAt(t, "2026-01-03T12:00:00Z", fp(5), "Clear"),
		entryAt(t, "2026-01-01T12:00:00Z", fp(3), "Clear"),
		entryAt(t, "2026-01-02T12:00:00Z", fp(4), "Clear"),
	}

	digests := SummarizeForecast(entries)
	require.Len(t, digests, 3)
	assert.Equal(t, "01/03", digests[0].DateLabel)
	assert.Equal(t, "01/01", digests[1].DateLabel)
	assert.Equal(t, "01/02", digests[2].DateLabel)
}

func TestSummarizeForecast_MinMax(t *testing.T) {
	SetLocation(time.UTC)
	defer SetLocation(nil)

	entries := []ForecastEntry{
		entryAt(t, "2026-01-01T00:00:00Z", fp(-1.5), "Clear"),
		entryAt(t, "2026-01-01T09:00:00Z", nil, "Clear"),
		entryAt(t, "2026-01-01T12:00:00Z", fp(7.2), "Clear"),
		entryAt(t, "2026-01-01T15:00:00Z", fp(4.0), "Clear"),
	}

	digests := SummarizeForecast(entries)
	require.Len(t, digests, 1)
	require.NotNil(t, digests[0].MinTempC)
	require.NotNil(t, digests[0].MaxTempC)
	assert.Equal(t, -1.5, *digests[0].MinTempC)
	assert.Equal(t, 7.2, *digests[0].MaxTempC)
	assert.Equal(t, "・01/01 ☀️ -1.5℃ / 7.2℃", digests[0].Line())
}

func TestSummarizeForecast_NoTemps(t *testing.T) {
	SetLocation(time.UTC)
	defer SetLocation(nil)

	entries := []ForecastEntry{
		entryAt(t, "2026-01-01T12:00:00Z", nil, "Snow"),
	}

	digests := SummarizeForecast(entries)
	require.Len(t, digests, 1)
	assert.Nil(t, digests[0].MinTempC)
	assert.Nil(t, digests[0].MaxTempC)
	assert.Equal(t, "・01/01 🌨️", digests[0].Line())
}

func TestSummarizeForecast_RepresentativeNearNoon(t *testing.T) {
	SetLocation(time.UTC)
	defer SetLocation(nil)

	t.Run("closest to noon wins", func(t *testing.T) {
		entries := []ForecastEntry{
			entryAt(t, "2026-01-01T06:00:00Z", fp(1), "Rain"),
			entryAt(t, "2026-01-01T12:00:00Z", fp(2), "Clear"),
			entryAt(t, "2026-01-01T18:00:00Z", fp(3), "Snow"),
		}
		digests := SummarizeForecast(entries)
		require.Len(t, digests, 1)
		assert.Equal(t, "☀️", digests[0].Glyph)
	})

	t.Run("tie keeps earliest entry", func(t *testing.T) {
		entries := []ForecastEntry{
			entryAt(t, "2026-01-01T11:00:00Z", fp(1), "Clouds"),
			entryAt(t, "2026-01-01T13:00:00Z", fp(2), "Rain"),
		}
		digests := SummarizeForecast(entries)
		require.Len(t, digests, 1)
		assert.Equal(t, "☁️", digests[0].Glyph)
	})
}

func TestGlyphPriority(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected string
	}{
		{"rain", "Rain", "🌧️"},
		{"snow", "Snow", "🌨️"},
		{"clouds", "Clouds", "☁️"},
		{"clear defaults to sun", "Clear", "☀️"},
		{"empty defaults to sun", "", "☀️"},
		{"rain beats snow", "RainSnow", "🌧️"},
		{"snow beats cloud", "SnowCloud", "🌨️"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, glyphFor(tt.category))
		})
	}
}
