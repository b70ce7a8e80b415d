package api

import (
	"event-staffing-service/internal/api/handlers"
	"event-staffing-service/internal/platform/auth"
	"event-staffing-service/internal/ports"
	"event-staffing-service/internal/services"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Dashboard      *services.DashboardService
	Estimator      *services.TravelCostEstimator
	Credentials    ports.CredentialStore
	Admin          *auth.Credentials
	// OpenSettings serves the settings routes without auth when Admin is nil.
	OpenSettings   bool
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	clientHandler := &handlers.ClientHandler{Dashboard: d.Dashboard}
	staffHandler := &handlers.StaffHandler{Dashboard: d.Dashboard}
	eventHandler := &handlers.EventHandler{Dashboard: d.Dashboard}
	estimateHandler := &handlers.EstimateHandler{Estimator: d.Estimator}
	settingsHandler := &handlers.SettingsHandler{Credentials: d.Credentials}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/clients", clientHandler.Clients)
	mux.HandleFunc("/clients/", clientHandler.Client)
	mux.HandleFunc("/staff", staffHandler.List)
	mux.HandleFunc("/events", eventHandler.List)
	mux.HandleFunc("/assignments", eventHandler.Assignments)
	mux.HandleFunc("/travel-estimates", estimateHandler.Create)
	mux.Handle("/settings/api-key", requireAuth(d.Admin, d.OpenSettings, http.HandlerFunc(settingsHandler.APIKey)))

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         600,
	})

	return requestIDMiddleware(loggingMiddleware(logger)(c.Handler(mux)))
}
