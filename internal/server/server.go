// Package server provides the HTTP server for the virtual-touch calculator:
// the JSON API, the MJPEG camera stream and the WebSocket overlay feed.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/sparsha/internal/app"
	"github.com/ayusman/sparsha/internal/server/api"
	"github.com/ayusman/sparsha/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server represents the HTTP server for the calculator application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Calculator endpoints need the running application
	if s.config.App != nil {
		s.mux.Handle("/api/state", api.NewStateHandler(s.config.App))
		s.mux.Handle("/api/press", api.NewPressHandler(s.config.App))
		s.mux.Handle("/api/history", api.NewHistoryHandler(s.config.App))
		s.mux.Handle("/api/layout", api.NewLayoutHandler(s.config.App))
		s.mux.Handle("/api/plugins", api.NewPluginsHandler(s.config.App.PluginManager()))

		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))
		s.mux.Handle("/api/overlay", NewOverlayHandler(s.config.App))
	}

	// Persistence endpoints need the store
	if s.config.Store != nil {
		s.mux.Handle("/api/settings", api.NewSettingsHandler(s.config.Store))

		actionHandler := api.NewActionHandler(s.config.Store)
		s.mux.Handle("/api/actions", actionHandler)
		s.mux.Handle("/api/actions/", actionHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
