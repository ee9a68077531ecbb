package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amayadori/weather-console/internal/observability"
)

// ErrDisabled is returned when no webhook URL is configured.
var ErrDisabled = errors.New("discord: webhook url not set")

// Webhook posts reply text to a Discord webhook. Delivery is best effort:
// the caller collapses any error into a boolean and never surfaces it.
type Webhook struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewWebhook creates a Discord webhook notifier.
func NewWebhook(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Webhook {
	return &Webhook{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Notify posts the text as a Discord message. Any non-2xx status is an error.
func (w *Webhook) Notify(ctx context.Context, text string) error {
	if w.url == "" {
		return ErrDisabled
	}

	payload, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.metrics.SinkPosts.WithLabelValues("error").Inc()
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		w.metrics.SinkPosts.WithLabelValues("error").Inc()
		return fmt.Errorf("discord webhook: status %d", resp.StatusCode)
	}

	w.metrics.SinkPosts.WithLabelValues("success").Inc()
	return nil
}
