package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/rinkside/internal/tools"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Server represents the REST API server.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server.
func NewServer(port string, registry *tools.Registry, version string) *Server {
	handler := NewHandler(registry, version)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Tool invocation surface
	api.HandleFunc("/tools", handler.ListTools).Methods("GET")
	api.HandleFunc("/tools/{name}", handler.CallTool).Methods("POST")

	// Direct views for the presentation layer
	api.HandleFunc("/teams/{team}/roster", handler.GetTeamRoster).Methods("GET")
	api.HandleFunc("/teams/{team}/scoreboard", handler.GetTeamScoreboard).Methods("GET")
	api.HandleFunc("/teams/{team}/next-game", handler.GetNextGame).Methods("GET")
	api.HandleFunc("/leaders", handler.GetLeaders).Methods("GET")
	api.HandleFunc("/players/{playerID}/stats", handler.GetPlayerStats).Methods("GET")

	// The web widgets are served from another origin
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: c.Handler(router),
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
