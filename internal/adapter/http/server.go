// Package http exposes the command webhook plus health and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amayadori/weather-console/internal/router"
)

// defaultSender is used when the webhook payload carries no "from" field.
const defaultSender = "unknown"

// CommandRouter turns one inbound message into a reply.
type CommandRouter interface {
	Route(ctx context.Context, sender, message string) (router.Result, error)
}

type webhookRequest struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

type webhookResponse struct {
	Status        string `json:"status"`
	SentToDiscord bool   `json:"sent_to_discord"`
	Mode          string `json:"mode"`
	City          string `json:"city"`
	ReplyText     string `json:"reply_text"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Server exposes the webhook, health, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	commands   CommandRouter
	logger     *slog.Logger
}

// NewServer creates an HTTP server routing POST /webhook to the command
// router, plus /ping, /healthz, and /metrics.
func NewServer(addr string, commands CommandRouter, logger *slog.Logger) *Server {
	r := mux.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		commands: commands,
		logger:   logger,
	}

	r.HandleFunc("/webhook", s.handleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	// Malformed or empty bodies fall through with zero values; the
	// message then takes the raw-echo path instead of failing the call.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Debug("webhook body not decodable", "error", err)
	}
	if req.From == "" {
		req.From = defaultSender
	}

	res, err := s.commands.Route(r.Context(), req.From, req.Message)
	if err != nil {
		s.logger.Error("command routing failed", "from", req.From, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Status:        "ok",
		SentToDiscord: res.Notified,
		Mode:          string(res.Mode),
		City:          res.City,
		ReplyText:     res.ReplyText,
	})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong\n")) //nolint:errcheck // best-effort liveness reply
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
