package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/questgate/steamqual/internal/services/auth"
	"github.com/questgate/steamqual/internal/services/checker"
	"github.com/questgate/steamqual/internal/web/handler"
	"github.com/questgate/steamqual/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CheckerService checker.ServiceInterface
	// BaseURL is the externally visible site root for OpenID redirects
	// (optional; derived from the request when empty)
	BaseURL string
	// StaticDir is the path to the static files directory (optional)
	StaticDir string
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.BaseURL)
	checkHandler := handler.NewCheckHandler(cfg.CheckerService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing the account in nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodGet)
	public.HandleFunc("/authenticate", authHandler.Authenticate).Methods(http.MethodGet)
	public.HandleFunc("/manual-auth", authHandler.ManualAuth).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require a signed-in account)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/check", checkHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/check/refresh", checkHandler.Refresh).Methods(http.MethodPost)

	return r
}
