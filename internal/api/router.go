package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questgate/steamqual/internal/api/handler"
	"github.com/questgate/steamqual/internal/api/middleware"
	"github.com/questgate/steamqual/internal/services/auth"
	"github.com/questgate/steamqual/internal/services/checker"
	"github.com/questgate/steamqual/internal/services/collector"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	CheckerService   checker.ServiceInterface
	CollectorService collector.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.AuthService)
	checkHandler := handler.NewCheckHandler(cfg.CheckerService)
	gamesHandler := handler.NewGamesHandler(cfg.CollectorService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Session routes (creation requires no auth)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(authMiddleware)
	sessions.HandleFunc("", sessionHandler.Delete).Methods(http.MethodDelete)

	// Check routes (require auth)
	checks := api.PathPrefix("/checks").Subrouter()
	checks.Use(authMiddleware)
	checks.HandleFunc("/{steam_id}", checkHandler.Get).Methods(http.MethodGet)

	// Account routes (require auth)
	accounts := api.PathPrefix("/accounts").Subrouter()
	accounts.Use(authMiddleware)
	accounts.HandleFunc("/{steam_id}/games", gamesHandler.List).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
