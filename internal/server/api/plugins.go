package api

import (
	"net/http"

	"github.com/ayusman/sparsha/internal/plugin"
)

// PluginsHandler lists the discovered result plugins.
type PluginsHandler struct {
	manager *plugin.Manager
}

// NewPluginsHandler creates a new PluginsHandler with the given manager.
func NewPluginsHandler(m *plugin.Manager) *PluginsHandler {
	return &PluginsHandler{manager: m}
}

type pluginResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

type listPluginsResponse struct {
	Plugins []pluginResponse `json:"plugins"`
}

// ServeHTTP handles GET requests to /api/plugins.
func (h *PluginsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plugins := h.manager.List()

	response := listPluginsResponse{
		Plugins: make([]pluginResponse, 0, len(plugins)),
	}
	for _, p := range plugins {
		response.Plugins = append(response.Plugins, pluginResponse{
			Name:        p.Manifest.Name,
			Version:     p.Manifest.Version,
			Description: p.Manifest.Description,
			Actions:     p.Manifest.Actions,
		})
	}

	writeJSON(w, http.StatusOK, response)
}
