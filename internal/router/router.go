// Package router composes replies from parsed commands and fetched weather
// data. It is the single orchestration point: branches are evaluated in a
// fixed order and the first applicable one terminates the request.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amayadori/weather-console/internal/domain"
	"github.com/amayadori/weather-console/internal/observability"
)

// fallbackRegion is used when geocoding returned neither state nor country.
const fallbackRegion = "JP"

// forecastFootnote closes every forecast reply; the free OpenWeather plan
// serves 5 days at 3-hour granularity.
const forecastFootnote = "※ OpenWeather無料枠は5日予報が基本です（7日相当はプラン制限のことがあります）"

// Result is the outcome of routing one message. Mode and City echo what the
// parser and resolver decided; Notified reports sink delivery.
type Result struct {
	ReplyText string
	Mode      domain.Mode
	City      string
	Notified  bool
}

// Router routes one free-text message to a composed reply.
type Router struct {
	parser   *domain.Parser
	geocoder domain.Geocoder
	weather  domain.WeatherProvider
	notifier domain.Notifier
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Router. The notifier may be nil, in which case results always
// report Notified=false.
func New(parser *domain.Parser, geocoder domain.Geocoder, weather domain.WeatherProvider,
	notifier domain.Notifier, logger *slog.Logger, metrics *observability.Metrics) *Router {
	return &Router{
		parser:   parser,
		geocoder: geocoder,
		weather:  weather,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Route processes one message end to end. Provider failures become
// user-facing replies; only an unexpected fault yields a non-nil error.
func (r *Router) Route(ctx context.Context, sender, message string) (res Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.metrics.RouteErrors.Inc()
			r.logger.Error("route panicked", "from", sender, "panic", p)
			err = fmt.Errorf("route: %v", p)
		}
	}()

	start := domain.Now()
	defer func() {
		r.metrics.RequestDuration.Observe(domain.Now().Sub(start).Seconds())
	}()

	cmd := r.parser.Parse(message)
	r.metrics.CommandsTotal.WithLabelValues(string(cmd.Mode)).Inc()
	r.logger.Info("command parsed",
		"from", sender, "intent", cmd.Intent, "city", cmd.City, "mode", cmd.Mode)

	if cmd.Intent == domain.IntentRaw {
		reply := fmt.Sprintf("[from=%s] %s", sender, strings.TrimSpace(message))
		return r.finish(ctx, reply, cmd.Mode, cmd.City), nil
	}

	place, resolveErr := r.geocoder.Resolve(ctx, cmd.City)
	if resolveErr != nil {
		r.logger.Warn("geocoding failed", "city", cmd.City, "error", resolveErr)
	}
	if resolveErr != nil || place == nil {
		reply := fmt.Sprintf("場所「%s」が見つかりませんでした (from=%s)", cmd.City, sender)
		return r.finish(ctx, reply, cmd.Mode, cmd.City), nil
	}

	region := place.Region
	if region == "" {
		region = fallbackRegion
	}

	cond, currentErr := r.weather.Current(ctx, place.Lat, place.Lon)
	if currentErr != nil || cond == nil {
		r.logger.Warn("current conditions fetch failed", "place", place.Name, "error", currentErr)
		reply := fmt.Sprintf("天気取得に失敗しました（%s） (from=%s)", place.Name, sender)
		return r.finish(ctx, reply, cmd.Mode, place.Name), nil
	}

	switch cmd.Intent {
	case domain.IntentWeather:
		reply := domain.FormatToday(place.Name, region, *cond, sender)
		return r.finish(ctx, reply, cmd.Mode, place.Name), nil
	case domain.IntentForecast:
		return r.forecastReply(ctx, place, region, sender, cmd.Mode), nil
	default: // umbrella, cold, outfit
		reply := domain.FormatToday(place.Name, region, *cond, sender) +
			"\n・" + adviceFor(cmd.Intent, *cond)
		return r.finish(ctx, reply, cmd.Mode, place.Name), nil
	}
}

func (r *Router) forecastReply(ctx context.Context, place *domain.ResolvedPlace, region, sender string, mode domain.Mode) Result {
	entries, err := r.weather.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		r.logger.Warn("forecast fetch failed", "place", place.Name, "error", err)
		reply := fmt.Sprintf("週間天気取得に失敗しました（%s） (from=%s)", place.Name, sender)
		return r.finish(ctx, reply, mode, place.Name)
	}

	lines := []string{fmt.Sprintf("【週間天気】 %s (%s) (from=%s)（今後5日）", place.Name, region, sender)}
	for _, d := range domain.SummarizeForecast(entries) {
		lines = append(lines, d.Line())
	}
	lines = append(lines, forecastFootnote)
	return r.finish(ctx, strings.Join(lines, "\n"), mode, place.Name)
}

func adviceFor(intent domain.Intent, cond domain.CurrentConditions) string {
	switch intent {
	case domain.IntentUmbrella:
		return domain.UmbrellaAdvice(cond)
	case domain.IntentCold:
		return domain.ColdAdvice(cond)
	}
	return domain.OutfitAdvice(cond)
}

// finish posts the reply to the notification sink and assembles the result.
// Sink failures only clear the Notified flag; they never alter the reply.
func (r *Router) finish(ctx context.Context, reply string, mode domain.Mode, city string) Result {
	notified := false
	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, reply); err != nil {
			r.logger.Debug("sink delivery failed", "error", err)
		} else {
			notified = true
		}
	}
	return Result{ReplyText: reply, Mode: mode, City: city, Notified: notified}
}
