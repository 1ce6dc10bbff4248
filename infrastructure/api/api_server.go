package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitewise/camcheck/application/service"
	apimiddleware "github.com/sitewise/camcheck/infrastructure/api/middleware"
	v1 "github.com/sitewise/camcheck/infrastructure/api/v1"
	mcpinternal "github.com/sitewise/camcheck/internal/mcp"
)

// APIServer provides the camcheck HTTP API.
type APIServer struct {
	checks       *service.Check
	apiKeys      []string
	historyLimit int
	version      string
	server       *Server
	router       chi.Router
	logger       *slog.Logger
}

// NewAPIServer creates an APIServer. apiKeys configures write
// protection on DELETE endpoints; empty disables it.
func NewAPIServer(checks *service.Check, apiKeys []string, historyLimit int, version string, logger *slog.Logger) *APIServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIServer{
		checks:       checks,
		apiKeys:      apiKeys,
		historyLimit: historyLimit,
		version:      version,
		logger:       logger,
	}
}

// mountRoutes wires all routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-KEY"},
		MaxAge:         300,
	}))
	router.Use(apimiddleware.Logging(a.logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		apimiddleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": a.version,
		})
	})

	checksRouter := v1.NewChecksRouter(a.checks, a.historyLimit, a.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		// Running a check is the read path of this service; only
		// destructive operations need a key.
		r.Group(func(r chi.Router) {
			r.Method(http.MethodPost, "/checks", http.HandlerFunc(checksRouter.Create))
			r.Method(http.MethodGet, "/checks", http.HandlerFunc(checksRouter.List))
			r.Method(http.MethodGet, "/checks/{id}", http.HandlerFunc(checksRouter.Get))
		})

		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.WriteProtect(a.apiKeys))
			r.Method(http.MethodDelete, "/checks/{id}", http.HandlerFunc(checksRouter.Delete))
		})
	})

	// MCP endpoint is mounted outside the timeout group because MCP
	// streams responses and manages its own session state.
	mcpSrv := mcpinternal.NewServer(a.checks, a.version, a.logger)
	router.Mount("/mcp", server.NewStreamableHTTPServer(mcpSrv.MCPServer()))
}

// ListenAndServe starts the HTTP server on the given address. It
// blocks until the server stops.
func (a *APIServer) ListenAndServe(addr string) error {
	srv := NewServer(addr, a.logger)
	a.server = &srv
	a.router = srv.Router()
	a.mountRoutes(a.router)
	return srv.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the full route tree as an http.Handler for tests
// and embedding.
func (a *APIServer) Handler() http.Handler {
	router := chi.NewRouter()
	a.mountRoutes(router)
	return router
}
