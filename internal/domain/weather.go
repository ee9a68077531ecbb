package domain

import (
	"context"
	"time"
)

// ResolvedPlace is the first geocoding candidate for a city query.
type ResolvedPlace struct {
	Name   string
	Lat    float64
	Lon    float64
	Region string // state if present, else country, else empty
}

// CurrentConditions holds the provider's current weather for a coordinate.
// Numeric fields the provider omitted stay nil and render as 不明.
type CurrentConditions struct {
	Description string
	TempC       *float64
	FeelsLikeC  *float64
	HumidityPct *int
	WindMS      *float64
	WeatherMain string
	HasRain     bool // a rain volume field was present, regardless of amount
}

// ForecastEntry is one 3-hour slot from the rolling forecast window.
type ForecastEntry struct {
	At          time.Time
	TempC       *float64
	WeatherMain string
}

// Geocoder resolves a user-facing city label to coordinates.
// A nil place with a nil error means the provider had no candidate.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (*ResolvedPlace, error)
}

// WeatherProvider fetches weather data for resolved coordinates.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*CurrentConditions, error)
	Forecast(ctx context.Context, lat, lon float64) ([]ForecastEntry, error)
}

// Notifier best-effort posts a reply to an external sink.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
