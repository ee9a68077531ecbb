package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amayadori/weather-console/internal/domain"
	"github.com/amayadori/weather-console/internal/observability"
)

// ErrNoAPIKey is returned when the provider credential is unset. The router
// treats it like any other recoverable provider failure.
var ErrNoAPIKey = errors.New("openweather: api key not set")

// geocodeLimit caps how many candidates the geocoding API may return.
// Only the first one is ever used; the rest exist for log inspection.
const geocodeLimit = "5"

// Config bundles the client settings.
type Config struct {
	APIKey  string
	Country string            // appended to queries lacking a country qualifier
	Lang    string            // language hint for textual descriptions
	Aliases map[string]string // city label → geocoding query overrides
	Timeout time.Duration
}

// Client implements domain.Geocoder and domain.WeatherProvider against the
// OpenWeather Geocoding and Data APIs.
type Client struct {
	apiKey      string
	country     string
	lang        string
	aliases     map[string]string
	httpClient  *http.Client
	geoBaseURL  string
	dataBaseURL string
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewClient creates an OpenWeather client.
func NewClient(cfg Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		country: cfg.Country,
		lang:    cfg.Lang,
		aliases: cfg.Aliases,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		geoBaseURL:  "https://api.openweathermap.org/geo/1.0",
		dataBaseURL: "https://api.openweathermap.org/data/2.5",
		metrics:     metrics,
		logger:      logger,
	}
}

// Resolve maps a city label to coordinates via the geocoding API. The alias
// table is consulted first; queries without a country qualifier get the
// configured country appended to reduce ambiguity. Only the first candidate
// is used; no candidate means (nil, nil).
func (c *Client) Resolve(ctx context.Context, city string) (*domain.ResolvedPlace, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	query := city
	if alias, ok := c.aliases[city]; ok {
		query = alias
	}
	if !strings.Contains(query, ",") {
		query = query + "," + c.country
	}

	params := url.Values{
		"q":     {query},
		"limit": {geocodeLimit},
		"appid": {c.apiKey},
	}

	var candidates []geoCandidate
	if err := c.getJSON(ctx, c.geoBaseURL+"/direct?"+params.Encode(), "geocode", &candidates); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	if len(candidates) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		c.logger.Debug("geocode returned no candidates", "city", city, "query", query)
		return nil, nil
	}
	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()

	best := candidates[0]
	name := best.Name
	if name == "" {
		name = city
	}
	region := best.State
	if region == "" {
		region = best.Country
	}
	return &domain.ResolvedPlace{Name: name, Lat: best.Lat, Lon: best.Lon, Region: region}, nil
}

// Current fetches current conditions for a coordinate in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*domain.CurrentConditions, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var resp currentResponse
	if err := c.getJSON(ctx, c.dataBaseURL+"/weather?"+c.coordParams(lat, lon).Encode(), "current", &resp); err != nil {
		c.metrics.WeatherRequests.WithLabelValues("current", "error").Inc()
		return nil, err
	}
	c.metrics.WeatherRequests.WithLabelValues("current", "success").Inc()

	return resp.toDomain(), nil
}

// Forecast fetches the 3-hour interval forecast list for a coordinate.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]domain.ForecastEntry, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var resp forecastResponse
	if err := c.getJSON(ctx, c.dataBaseURL+"/forecast?"+c.coordParams(lat, lon).Encode(), "forecast", &resp); err != nil {
		c.metrics.WeatherRequests.WithLabelValues("forecast", "error").Inc()
		return nil, err
	}
	c.metrics.WeatherRequests.WithLabelValues("forecast", "success").Inc()

	entries := make([]domain.ForecastEntry, 0, len(resp.List))
	for _, item := range resp.List {
		if item.Dt == 0 {
			continue
		}
		entry := domain.ForecastEntry{At: time.Unix(item.Dt, 0), TempC: item.Main.Temp}
		if len(item.Weather) > 0 {
			entry.WeatherMain = item.Weather[0].Main
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) coordParams(lat, lon float64) url.Values {
	return url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"units": {"metric"},
		"lang":  {c.lang},
		"appid": {c.apiKey},
	}
}

func (c *Client) getJSON(ctx context.Context, fullURL, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderAPIDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// OpenWeather API response types.

type geoCandidate struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

type weatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type currentResponse struct {
	Weather []weatherCondition `json:"weather"`
	Main    struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain map[string]float64 `json:"rain"`
}

func (r currentResponse) toDomain() *domain.CurrentConditions {
	cond := &domain.CurrentConditions{
		TempC:       r.Main.Temp,
		FeelsLikeC:  r.Main.FeelsLike,
		HumidityPct: r.Main.Humidity,
		WindMS:      r.Wind.Speed,
		HasRain:     r.Rain != nil,
	}
	if len(r.Weather) > 0 {
		cond.Description = r.Weather[0].Description
		cond.WeatherMain = r.Weather[0].Main
	}
	return cond
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []weatherCondition `json:"weather"`
}
