// Package api exposes the game over an HTTP JSON API with SSE streaming.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/starchase/starchase-go/internal/api/handler"
	apimiddleware "github.com/starchase/starchase-go/internal/api/middleware"
	"github.com/starchase/starchase-go/internal/api/sse"
	"github.com/starchase/starchase-go/internal/middleware"
	"github.com/starchase/starchase-go/internal/services/auto"
	"github.com/starchase/starchase-go/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	AutoService    *auto.Service
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(
		cfg.GameController, cfg.AutoService, cfg.HubManager, cfg.Logger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/summary", sessionHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/spin", sessionHandler.Spin).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/answers", sessionHandler.Answer).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/stars", sessionHandler.SelectStar).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/twist-choice", sessionHandler.Candidates).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/twist-choice", sessionHandler.TwistChoice).Methods(http.MethodPost)

	// SSE event stream
	api.HandleFunc("/sessions/{id}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
