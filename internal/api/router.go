package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/userbinhq/userbin/internal/api/apierr"
	"github.com/userbinhq/userbin/internal/api/handler"
	apimiddleware "github.com/userbinhq/userbin/internal/api/middleware"
	"github.com/userbinhq/userbin/internal/middleware"
	"github.com/userbinhq/userbin/internal/services/auth"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	AllowedOrigin string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	userHandler := handler.NewUserHandler(cfg.AuthService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	// Allow-Methods must be populated before the CORS middleware answers
	// preflight, so CORSMethodMiddleware is added first
	api.Use(mux.CORSMethodMiddleware(api))
	api.Use(apimiddleware.CORS(cfg.AllowedOrigin))

	// Routes register OPTIONS explicitly so preflight requests reach the CORS
	// middleware instead of the method-not-allowed handler
	api.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users", userHandler.List).Methods(http.MethodGet, http.MethodOptions)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet, http.MethodOptions)

	// Method mismatches surface on the router that matched the path, which is
	// the subrouter; the root router would fall through to a plain 404
	api.MethodNotAllowedHandler = methodNotAllowedHandler(cfg.AllowedOrigin)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// methodNotAllowedHandler writes the JSON 405 response. Route middleware does
// not run for unmatched methods, so CORS headers are set here directly.
func methodNotAllowedHandler(allowedOrigin string) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})
}
