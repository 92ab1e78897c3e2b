// Package httpserver wires the budget engine behind a thin HTTP surface.
package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/tandembudget/tandem/internal/budget"
	"github.com/tandembudget/tandem/internal/config"
	"github.com/tandembudget/tandem/internal/middleware"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new HTTP server with all routes configured.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	budgetHandler := budget.NewHandler(cfg.DefaultTimezone, logger)

	summaryLimiter := middleware.NewRateLimiter(60, time.Minute)
	rateLimit := middleware.RateLimit(summaryLimiter)

	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /version", handleVersion)

	// Budget endpoints
	mux.Handle("POST /api/budget/summary", rateLimit(http.HandlerFunc(budgetHandler.Summarize)))
	mux.HandleFunc("GET /api/budget/period", budgetHandler.GetPeriod)

	// Apply middleware
	var handler http.Handler = mux
	handler = middleware.NoCache()(handler)
	handler = middleware.Gzip()(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID()(handler)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"version":   Version,
		"commit":    Commit,
		"buildTime": BuildTime,
	})
}
