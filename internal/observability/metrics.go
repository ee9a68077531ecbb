package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the console.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec // labels: mode
	RouteErrors     prometheus.Counter
	RequestDuration prometheus.Histogram

	// Provider metrics.
	GeocodeRequests     *prometheus.CounterVec   // labels: outcome={success,empty,error}
	GeocodeCache        *prometheus.CounterVec   // labels: result={hit,miss}
	WeatherRequests     *prometheus.CounterVec   // labels: op={current,forecast}, outcome={success,error}
	ProviderAPIDuration *prometheus.HistogramVec // labels: op={geocode,current,forecast}

	// Notification sink metrics.
	SinkPosts *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all console metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "commands_total",
			Help:      "Routed commands by display mode.",
		}, []string{"mode"}),
		RouteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "route_errors_total",
			Help:      "Unexpected faults converted to error results.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_console",
			Name:      "request_duration_seconds",
			Help:      "End-to-end duration of one routed message.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "weather_requests_total",
			Help:      "Weather API requests by operation and outcome.",
		}, []string{"op", "outcome"}),
		ProviderAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_console",
			Name:      "provider_api_duration_seconds",
			Help:      "OpenWeather API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"op"}),
		SinkPosts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_console",
			Name:      "sink_posts_total",
			Help:      "Notification sink deliveries by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.CommandsTotal,
		m.RouteErrors,
		m.RequestDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.WeatherRequests,
		m.ProviderAPIDuration,
		m.SinkPosts,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CommandsTotal:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_console", Name: "commands_total"}, []string{"mode"}),
		RouteErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_console", Name: "route_errors_total"}),
		RequestDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_console", Name: "request_duration_seconds"}),
		GeocodeRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_console", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_console", Name: "geocode_cache_total"}, []string{"result"}),
		WeatherRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_console", Name: "weather_requests_total"}, []string{"op", "outcome"}),
		ProviderAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weather_console", Name: "provider_api_duration_seconds"}, []string{"op"}),
		SinkPosts:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_console", Name: "sink_posts_total"}, []string{"outcome"}),
	}
}
